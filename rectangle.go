package figure

// Rectangle is a figure defined by its width and height.
type Rectangle struct {
	color         Color
	width, height float64
}

// NewRectangle returns a rectangle. Width and height must be positive.
func NewRectangle(color Color, width, height float64) (Rectangle, error) {
	if err := validatePositive(width, height); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{color: color, width: width, height: height}, nil
}

func (r Rectangle) Shape() Shape    { return ShapeRectangle }
func (r Rectangle) Color() Color    { return r.color }
func (r Rectangle) Width() float64  { return r.width }
func (r Rectangle) Height() float64 { return r.height }
func (r Rectangle) Area() float64   { return truncate2(r.width * r.height) }
func (r Rectangle) String() string  { return Info(r) }
