package domain

// Course is a catalog entry. Ids are caller-supplied and not enforced unique;
// the catalog is append-only within this service.
type Course struct {
	CourseID    int     `json:"CourseId"`
	CourseName  string  `json:"CourseName"`
	Description string  `json:"Description"`
	Duration    string  `json:"Duration"`
	Price       float64 `json:"Price"`
}
