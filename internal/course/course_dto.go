package course

type CourseResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Category    string               `json:"category"`
	Level       string               `json:"level"`
	Summary     string               `json:"summary"`
	Weeks       int                  `json:"weeks"`
	Lessons     int                  `json:"lessons"`
	Students    int                  `json:"students"`
	Program     []ProgramSection     `json:"program"`
	Instructors []InstructorResponse `json:"instructors"`
	Packages    []PackageResponse    `json:"packages"`
}

type CourseSummaryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Level     string `json:"level"`
	PriceFrom string `json:"priceFrom"`
}

type InstructorResponse struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Experience string `json:"experience"`
	AvatarURL  string `json:"avatarUrl"`
}

type PackageResponse struct {
	Name            string   `json:"name"`
	Price           string   `json:"price"`
	Amount          string   `json:"amount"`
	OriginalPrice   string   `json:"originalPrice,omitempty"`
	DiscountPercent int      `json:"discountPercent,omitempty"`
	Features        []string `json:"features"`
	Popular         bool     `json:"popular"`
}
