package course

import "github.com/shopspring/decimal"

type Course struct {
	ID          string
	Title       string
	Category    string
	Level       string
	Summary     string
	Weeks       int
	Lessons     int
	Students    int
	Program     []ProgramSection
	Instructors []Instructor
	Packages    []Package
}

type ProgramSection struct {
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
}

type Instructor struct {
	Name       string
	Role       string
	Experience string
	AvatarURL  string
}

type Package struct {
	Name          string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Features      []string
	Popular       bool
}
