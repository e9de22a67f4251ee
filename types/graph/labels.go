package graph

import (
	"strconv"
)

// Labels interns string labels to dense integer colors. Mining compares
// colors only; the table maps them back for output.
type Labels struct {
	colors map[string]int
	labels []string
}

func NewLabels() *Labels {
	return &Labels{
		colors: make(map[string]int),
		labels: make([]string, 0, 10),
	}
}

func (l *Labels) Color(label string) int {
	if color, has := l.colors[label]; has {
		return color
	}
	color := len(l.labels)
	l.colors[label] = color
	l.labels = append(l.labels, label)
	return color
}

func (l *Labels) Label(color int) string {
	if color < 0 || color >= len(l.labels) {
		return strconv.Itoa(color)
	}
	return l.labels[color]
}

func (l *Labels) Size() int {
	return len(l.labels)
}
