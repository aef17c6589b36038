package task

// Type represents the kind of work a Task tracks.
type Type string

const (
	TypeFeature Type = "feature"
	TypeBug     Type = "bug"
	TypeChore   Type = "chore"
	TypeDoc     Type = "doc"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeFeature, TypeBug, TypeChore, TypeDoc:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
