package employee

// Employee is a directory entry served by the spreadsheet collaborator.
type Employee struct {
	ID         string
	Name       string
	Department string
	Role       string
	PhotoURL   string
}
