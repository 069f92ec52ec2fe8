package model

type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}
