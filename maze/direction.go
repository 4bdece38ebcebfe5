package maze

// Direction identifies one of the four sides of a cell.
type Direction int

// Directions in wall-index order.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections lists every direction in wall-index order.
var AllDirections = [4]Direction{Up, Right, Down, Left}

var (
	deltas = [4]Position{
		Up:    {Row: -1, Col: 0},
		Right: {Row: 0, Col: 1},
		Down:  {Row: 1, Col: 0},
		Left:  {Row: 0, Col: -1},
	}
	opposites = [4]Direction{Up: Down, Right: Left, Down: Up, Left: Right}
	names     = [4]string{Up: "Up", Right: "Right", Down: "Down", Left: "Left"}
)

// Delta returns the row/col offset of one step in d.
func (d Direction) Delta() Position {
	return deltas[d]
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return names[d]
}
