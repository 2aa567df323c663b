package course

func mapCourse(c Course) CourseResponse {
	instructors := make([]InstructorResponse, 0, len(c.Instructors))
	for _, in := range c.Instructors {
		instructors = append(instructors, InstructorResponse{
			Name:       in.Name,
			Role:       in.Role,
			Experience: in.Experience,
			AvatarURL:  in.AvatarURL,
		})
	}

	packages := make([]PackageResponse, 0, len(c.Packages))
	for _, p := range c.Packages {
		packages = append(packages, mapPackage(p))
	}

	return CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Category:    c.Category,
		Level:       c.Level,
		Summary:     c.Summary,
		Weeks:       c.Weeks,
		Lessons:     c.Lessons,
		Students:    c.Students,
		Program:     c.Program,
		Instructors: instructors,
		Packages:    packages,
	}
}

func mapPackage(p Package) PackageResponse {
	res := PackageResponse{
		Name:     p.Name,
		Price:    FormatPrice(p.Price),
		Amount:   p.Price.StringFixed(2),
		Features: p.Features,
		Popular:  p.Popular,
	}
	if p.OriginalPrice != nil {
		res.OriginalPrice = FormatPrice(*p.OriginalPrice)
		res.DiscountPercent = DiscountPercent(p.Price, p.OriginalPrice)
	}
	return res
}

func mapSummary(c Course) CourseSummaryResponse {
	res := CourseSummaryResponse{
		ID:       c.ID,
		Title:    c.Title,
		Category: c.Category,
		Level:    c.Level,
	}
	if len(c.Packages) == 0 {
		return res
	}
	lowest := c.Packages[0].Price
	for _, p := range c.Packages[1:] {
		if p.Price.LessThan(lowest) {
			lowest = p.Price
		}
	}
	res.PriceFrom = FormatPrice(lowest)
	return res
}
