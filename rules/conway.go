package rules

/*
NextState applies the classic Game of Life rules to a single cell and
returns whether it is alive in the next generation.

A live cell survives with exactly 2 or 3 live neighbors, a dead cell is born
with exactly 3, and every other cell dies or stays dead. That collapses to:
(alive && neighbors == 2) || neighbors == 3.

Birth requires exactly 3 neighbors. The historical ">= 3" variant of the
reproduction rule is not Conway's game.
*/
func NextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
