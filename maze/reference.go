package maze

// referencePassages is a 4×4 maze carved by sidewinder, kept as fixed data
// for checking the solver and renderers against known answers.
var referencePassages = []Passage{
	{From: Location{0, 0}, To: Location{0, 1}},
	{From: Location{0, 1}, To: Location{0, 2}},
	{From: Location{0, 2}, To: Location{0, 3}},
	{From: Location{0, 3}, To: Location{1, 3}},
	{From: Location{1, 0}, To: Location{1, 1}},
	{From: Location{1, 0}, To: Location{2, 0}},
	{From: Location{1, 1}, To: Location{1, 2}},
	{From: Location{1, 2}, To: Location{1, 3}},
	{From: Location{1, 2}, To: Location{2, 2}},
	{From: Location{1, 3}, To: Location{2, 3}},
	{From: Location{2, 0}, To: Location{2, 1}},
	{From: Location{2, 0}, To: Location{3, 0}},
	{From: Location{2, 1}, To: Location{3, 1}},
	{From: Location{3, 1}, To: Location{3, 2}},
	{From: Location{3, 2}, To: Location{3, 3}},
}

// Reference returns a fresh copy of the bundled 4×4 example maze.
func Reference() *Grid {
	g, err := FromPassages(4, 4, referencePassages)
	if err != nil {
		panic(err)
	}
	return g
}
