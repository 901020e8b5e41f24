package models

// Student represents a learner enrolled in the school portal.
type Student struct {
	ID             int    `json:"id"`
	Name           string `json:"name" validate:"required"`
	Grade          int    `json:"grade" validate:"required"`
	Image          string `json:"image"`
	Bio            string `json:"bio"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	OverallGrade   int    `json:"overallGrade"`
	Attendance     int    `json:"attendance"`
	RecentActivity string `json:"recentActivity"`

	AcademicHistory     []AcademicTerm      `json:"academicHistory"`
	AttendanceHistory   []AttendanceEntry   `json:"attendanceHistory"`
	ProgressReports     []ProgressReport    `json:"progressReports"`
	UpcomingAssignments []AssignmentPreview `json:"upcomingAssignments"`
}

// AcademicTerm groups per-subject results for a single term.
type AcademicTerm struct {
	Term    string          `json:"term"`
	Records []SubjectRecord `json:"records"`
}

// SubjectRecord is one graded subject within a term.
type SubjectRecord struct {
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Grade   int    `json:"grade"`
}

// Attendance statuses recorded per school day.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLate    = "Late"
)

// AttendanceEntry records a single day of attendance.
type AttendanceEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// ProgressReport is a teacher-written term summary with a download link.
type ProgressReport struct {
	Term           string `json:"term"`
	Date           string `json:"date"`
	TeacherComment string `json:"teacherComment"`
	DownloadURL    string `json:"downloadUrl"`
}

// AssignmentPreview is a stub of an upcoming assignment shown on the profile.
type AssignmentPreview struct {
	AssignmentID int    `json:"assignmentId"`
	Subject      string `json:"subject"`
	Title        string `json:"title"`
	DueDate      string `json:"dueDate"`
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Search   string
	Grade    int
	Page     int
	PageSize int
}
