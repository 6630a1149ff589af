package universe

//DefaultTemplates returns the seeding templates known by every universe
func DefaultTemplates() []Template {
	return []Template{
		{
			Name:        "block",
			Descr:       "2x2 still life",
			Coordinates: [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
		},
		{
			Name:        "blinker",
			Descr:       "period 2 oscillator",
			Coordinates: [][]int{{1, 2}, {2, 2}, {3, 2}},
		},
		{
			Name:        "glider",
			Descr:       "moves one cell diagonally every 4 steps",
			Coordinates: [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
		},
		{
			Name:        "sample",
			Descr:       "the test sample with 3 stable patterns",
			Coordinates: [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
		},
	}
}
