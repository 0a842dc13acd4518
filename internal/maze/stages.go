package maze

// Shorthand for the stage tables below.
const (
	o = Path
	w = Wall
	e = End
	a = Advance
)

// stage1Grid is the first maze. Its Advance cell sits in the bottom-right corner.
var stage1Grid = MustGrid([][]Cell{
	{o, w, o, o, o, w, o},
	{o, w, w, o, w, w, o},
	{o, o, o, o, o, o, o},
	{w, w, o, w, w, w, o},
	{o, o, o, o, o, o, o},
	{o, w, w, w, w, w, o},
	{o, o, o, o, o, o, a},
})

// stage2Grid is the final maze. Its End cell sits in the bottom-right corner.
var stage2Grid = MustGrid([][]Cell{
	{o, o, o, w, o, o, o},
	{w, w, o, w, o, w, o},
	{o, o, o, o, o, w, o},
	{o, w, w, w, w, w, o},
	{o, o, o, o, o, o, o},
	{w, w, o, w, w, w, o},
	{o, o, o, o, o, o, e},
})

// Stages returns the stage grids in play order.
func Stages() []Grid {
	return []Grid{stage1Grid, stage2Grid}
}
