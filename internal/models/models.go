package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	UserID         string    `json:"user_id" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	Role           Role      `json:"role" db:"role"`
	DepartmentID   *int64    `json:"department_id" db:"department_id"`
	StudentID      *string   `json:"student_id" db:"student_id"`
	YearOfStudy    *int      `json:"year_of_study" db:"year_of_study"`
	Bio            *string   `json:"bio" db:"bio"`
	ProfilePicture *string   `json:"profile_picture" db:"profile_picture"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type Department struct {
	DepartmentID int64   `json:"id" db:"department_id"`
	Name         string  `json:"name" db:"name"`
	Code         string  `json:"code" db:"code"`
	Description  *string `json:"description" db:"description"`
}

type Post struct {
	PostID         string    `json:"id" db:"post_id"`
	AuthorID       string    `json:"user_id" db:"author_id"`
	Content        string    `json:"content" db:"content"`
	PostType       PostType  `json:"post_type" db:"post_type"`
	DepartmentID   *int64    `json:"department_id" db:"department_id"`
	CourseCode     *string   `json:"course_code" db:"course_code"`
	Category       *string   `json:"category" db:"category"`
	Priority       Priority  `json:"priority" db:"priority"`
	IsAnnouncement bool      `json:"is_announcement" db:"is_announcement"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	Tags           []string  `json:"tags" db:"-"`
}

// FeedPost is the read view of a post with author, department and interaction aggregates.
type FeedPost struct {
	PostID         string         `json:"id" db:"post_id"`
	Content        string         `json:"content" db:"content"`
	PostType       PostType       `json:"post_type" db:"post_type"`
	DepartmentID   *int64         `json:"department_id" db:"department_id"`
	CourseCode     *string        `json:"course_code" db:"course_code"`
	Category       *string        `json:"category" db:"category"`
	Priority       Priority       `json:"priority" db:"priority"`
	IsAnnouncement bool           `json:"is_announcement" db:"is_announcement"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	AuthorID       string         `json:"user_id" db:"author_id"`
	Username       string         `json:"username" db:"username"`
	Role           Role           `json:"role" db:"role"`
	StudentID      *string        `json:"student_id" db:"student_id"`
	DepartmentName *string        `json:"department_name" db:"department_name"`
	DepartmentCode *string        `json:"department_code" db:"department_code"`
	LikesCount     int            `json:"likes_count" db:"likes_count"`
	CommentsCount  int            `json:"comments_count" db:"comments_count"`
	Tags           pq.StringArray `json:"tags" db:"tags"`
}

// FeedFilter fields are optional; a nil field places no constraint on the feed.
type FeedFilter struct {
	DepartmentID *int64
	PostType     *PostType
	CourseCode   *string
}

type Liker struct {
	Username string `json:"username" db:"username"`
}

type Comment struct {
	CommentID string    `json:"id" db:"comment_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	PostID    string    `json:"post_id" db:"post_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Username  string    `json:"username" db:"username"`
}

type Event struct {
	EventID        string     `json:"id" db:"event_id"`
	Title          string     `json:"title" db:"title"`
	Description    *string    `json:"description" db:"description"`
	EventType      *string    `json:"event_type" db:"event_type"`
	DepartmentID   *int64     `json:"department_id" db:"department_id"`
	OrganizerID    string     `json:"organizer_id" db:"organizer_id"`
	EventDate      *time.Time `json:"event_date" db:"event_date"`
	Location       *string    `json:"location" db:"location"`
	IsPublic       bool       `json:"is_public" db:"is_public"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	OrganizerName  string     `json:"organizer_name" db:"organizer_name"`
	DepartmentName *string    `json:"department_name" db:"department_name"`
}

type EventFilter struct {
	DepartmentID *int64
	EventType    *string
}

type Resource struct {
	ResourceID     string    `json:"id" db:"resource_id"`
	Title          string    `json:"title" db:"title"`
	Description    *string   `json:"description" db:"description"`
	ResourceType   *string   `json:"resource_type" db:"resource_type"`
	FileURL        *string   `json:"file_url" db:"file_url"`
	CourseCode     *string   `json:"course_code" db:"course_code"`
	DepartmentID   *int64    `json:"department_id" db:"department_id"`
	UploaderID     string    `json:"uploader_id" db:"uploader_id"`
	IsApproved     bool      `json:"is_approved" db:"is_approved"`
	DownloadCount  int       `json:"download_count" db:"download_count"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UploaderName   string    `json:"uploader_name" db:"uploader_name"`
	DepartmentName *string   `json:"department_name" db:"department_name"`
}

type ResourceFilter struct {
	DepartmentID *int64
	CourseCode   *string
	ResourceType *string
}

type Mentorship struct {
	MentorshipID string           `json:"id" db:"mentorship_id"`
	MentorID     string           `json:"mentor_id" db:"mentor_id"`
	MenteeID     string           `json:"mentee_id" db:"mentee_id"`
	SubjectArea  *string          `json:"subject_area" db:"subject_area"`
	Status       MentorshipStatus `json:"status" db:"status"`
	Message      *string          `json:"message" db:"message"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	MentorName   string           `json:"mentor_name" db:"mentor_name"`
	MentorRole   Role             `json:"mentor_role" db:"mentor_role"`
	MenteeName   string           `json:"mentee_name" db:"mentee_name"`
	MenteeRole   Role             `json:"mentee_role" db:"mentee_role"`
}

type CalendarEntry struct {
	CalendarID     string     `json:"id" db:"calendar_id"`
	Title          string     `json:"title" db:"title"`
	Description    *string    `json:"description" db:"description"`
	EventType      *string    `json:"event_type" db:"event_type"`
	StartDate      time.Time  `json:"start_date" db:"start_date"`
	EndDate        *time.Time `json:"end_date" db:"end_date"`
	DepartmentID   *int64     `json:"department_id" db:"department_id"`
	IsImportant    bool       `json:"is_important" db:"is_important"`
	CreatedBy      string     `json:"created_by" db:"created_by"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	CreatedByName  string     `json:"created_by_name" db:"created_by_name"`
	DepartmentName *string    `json:"department_name" db:"department_name"`
}

type CalendarFilter struct {
	DepartmentID *int64
	EventType    *string
}
