package models

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleStaff   Role = "staff"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleStaff:
		return true
	}
	return false
}

// Capability names an action that only some roles may perform.
type Capability int

const (
	CapPublishAnnouncement Capability = iota
	CapManageCalendar
	CapApproveResource
)

// Can is the single place where role privileges are decided.
func (r Role) Can(c Capability) bool {
	switch c {
	case CapPublishAnnouncement, CapManageCalendar, CapApproveResource:
		return r == RoleFaculty || r == RoleStaff
	}
	return false
}

type PostType string

const (
	PostTypeGeneral      PostType = "general"
	PostTypeDiscussion   PostType = "discussion"
	PostTypeAnnouncement PostType = "announcement"
	PostTypeResource     PostType = "resource"
	PostTypeEvent        PostType = "event"
	PostTypeMentorship   PostType = "mentorship"
)

func (t PostType) Valid() bool {
	switch t {
	case PostTypeGeneral, PostTypeDiscussion, PostTypeAnnouncement,
		PostTypeResource, PostTypeEvent, PostTypeMentorship:
		return true
	}
	return false
}

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityNormal || p == PriorityHigh
}

type MentorshipStatus string

const (
	MentorshipPending  MentorshipStatus = "pending"
	MentorshipAccepted MentorshipStatus = "accepted"
	MentorshipDeclined MentorshipStatus = "declined"
)
