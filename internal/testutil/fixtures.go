package testutil

// ScriptedTurn is the dice a test game rolls for one turn and the row it
// scores them into.
type ScriptedTurn struct {
	Faces []int
	Row   int
	Score int
}

// PerfectishGame is a thirteen-turn script where every turn keeps the
// opening roll. The rows are scored in board order and total 330 with the
// upper bonus.
func PerfectishGame() []ScriptedTurn {
	return []ScriptedTurn{
		{Faces: []int{1, 1, 1, 1, 1}, Row: 0, Score: 5},
		{Faces: []int{2, 2, 2, 2, 2}, Row: 1, Score: 10},
		{Faces: []int{3, 3, 3, 3, 3}, Row: 2, Score: 15},
		{Faces: []int{4, 4, 4, 4, 4}, Row: 3, Score: 20},
		{Faces: []int{5, 5, 5, 5, 2}, Row: 4, Score: 20},
		{Faces: []int{6, 6, 6, 6, 1}, Row: 5, Score: 24},
		{Faces: []int{3, 3, 3, 2, 1}, Row: 6, Score: 12},
		{Faces: []int{6, 6, 6, 6, 5}, Row: 7, Score: 29},
		{Faces: []int{2, 2, 2, 3, 3}, Row: 8, Score: 25},
		{Faces: []int{1, 2, 3, 4, 6}, Row: 9, Score: 30},
		{Faces: []int{2, 3, 4, 5, 6}, Row: 10, Score: 40},
		{Faces: []int{1, 2, 3, 4, 5}, Row: 11, Score: 15},
		{Faces: []int{6, 6, 6, 6, 6}, Row: 12, Score: 50},
	}
}

// PerfectishGameTotal is the grand total of PerfectishGame.
const PerfectishGameTotal = 330

// PerfectishFaces flattens the opening rolls of PerfectishGame.
func PerfectishFaces() []int {
	var faces []int
	for _, turn := range PerfectishGame() {
		faces = append(faces, turn.Faces...)
	}
	return faces
}
