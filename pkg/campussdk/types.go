package campussdk

import "time"

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest is the body of POST /api/register. Role specific fields
// are only read for the matching role.
type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`

	// student
	StudentID   string `json:"studentId,omitempty"`
	YearOfStudy int    `json:"yearOfStudy,omitempty"`

	// faculty
	FacultyID string `json:"facultyId,omitempty"`
	Position  string `json:"position,omitempty"`

	// admin
	AdminID    string `json:"adminId,omitempty"`
	AdminLevel string `json:"adminLevel,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message    string `json:"message"`
	Token      string `json:"token"`
	Role       string `json:"role"`
	Department string `json:"department"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int `json:"expires_in"`
}

type Profile struct {
	StudentID   string `json:"studentId,omitempty"`
	YearOfStudy int    `json:"yearOfStudy,omitempty"`
	FacultyID   string `json:"facultyId,omitempty"`
	Position    string `json:"position,omitempty"`
	AdminID     string `json:"adminId,omitempty"`
	AdminLevel  string `json:"adminLevel,omitempty"`
}

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	Profile    *Profile  `json:"profile,omitempty"`
}

// ============================================================================
// Department Types
// ============================================================================

type Department struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ============================================================================
// Event Types
// ============================================================================

// Event dates are YYYY-MM-DD.
type Event struct {
	ID            string         `json:"id"`
	Name          string         `json:"event_name"`
	Type          string         `json:"event_type"`
	Description   string         `json:"description"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date,omitempty"`
	Department    string         `json:"department"`
	Status        string         `json:"status"`
	DynamicFields map[string]any `json:"dynamic_fields,omitempty"`
	ReportURL     string         `json:"report_url,omitempty"`
	ReportDocxURL string         `json:"report_docx_url,omitempty"`
	CreatedBy     string         `json:"created_by,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

type CreateEventRequest struct {
	Name          string         `json:"event_name"`
	Type          string         `json:"event_type"`
	Description   string         `json:"description"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date,omitempty"`
	Department    string         `json:"department"`
	DynamicFields map[string]any `json:"dynamic_fields,omitempty"`
}

// EventFilter holds the query parameters of GET /api/events.
type EventFilter struct {
	Department string
	ID         string
	Status     string
}

// ============================================================================
// Achievement Types
// ============================================================================

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UserID      string    `json:"user_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Department  string    `json:"department"`
	DocumentURL string    `json:"document_url,omitempty"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateAchievementRequest struct {
	Name        string `json:"name"`
	UserID      string `json:"user_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Department  string `json:"department"`
	DocumentURL string `json:"document_url,omitempty"`
	Type        string `json:"type"`
}

type AchievementFilter struct {
	Type       string
	Department string
	Category   string
}

// ============================================================================
// Result Types
// ============================================================================

// UploadResultRequest carries the form fields of a result sheet upload.
// The file itself is passed to UploadResult as a reader.
type UploadResultRequest struct {
	FileName   string
	Department string
	Batch      string
	Semester   string
}

type UploadResultResponse struct {
	Message   string `json:"message"`
	TableName string `json:"table_name"`
	Students  int    `json:"students"`
	Subjects  int    `json:"subjects"`
}

type StudentResult struct {
	RollNumber  string         `json:"roll_number"`
	StudentName string         `json:"student_name"`
	Marks       map[string]int `json:"marks"`
}

type ResultsResponse struct {
	Department string          `json:"department"`
	Batch      string          `json:"batch"`
	Semester   int             `json:"semester"`
	Subjects   []string        `json:"subjects"`
	Results    []StudentResult `json:"results"`
}

type ResultSheet struct {
	Department string    `json:"department"`
	Batch      string    `json:"batch"`
	Semester   int       `json:"semester"`
	TableName  string    `json:"table_name"`
	Subjects   []string  `json:"subjects"`
	Students   int       `json:"students"`
	SourceFile string    `json:"source_file,omitempty"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ============================================================================
// Analytics Types
// ============================================================================

type SubjectAverage struct {
	Subject        string  `json:"subject"`
	AverageMarks   float64 `json:"average_marks"`
	FailCount      int     `json:"fail_count"`
	Appeared       int     `json:"appeared"`
	PassPercentage float64 `json:"pass_percentage"`
}

type TopPerformer struct {
	RollNumber   string  `json:"roll_number"`
	StudentName  string  `json:"student_name"`
	AverageMarks float64 `json:"average_marks"`
}

type SemesterTrend struct {
	Semester              int     `json:"semester"`
	AverageMarks          float64 `json:"avg_marks"`
	AveragePassPercentage float64 `json:"avg_pass_percentage"`
	ClearedAll            int     `json:"cleared_all"`
}

type AnalyticsResponse struct {
	AverageMarks     []SubjectAverage `json:"averageMarks"`
	TopPerformers    []TopPerformer   `json:"topPerformers"`
	PerformanceTrend []SemesterTrend  `json:"performanceTrend"`

	AveragePassPercentage float64 `json:"avg_pass_percentage"`
	ClearedAll            int     `json:"cleared_all"`
	Students              int     `json:"students"`
}

type BatchSemesterPerformance struct {
	Department            string  `json:"department"`
	Semester              int     `json:"semester"`
	AveragePassPercentage float64 `json:"avg_pass_percentage"`
}

type DepartmentPerformance struct {
	Department            string  `json:"department"`
	AveragePassPercentage float64 `json:"average_pass_percentage"`
}

type BatchPerformanceResponse struct {
	BatchPerformance             []BatchSemesterPerformance `json:"batchPerformance"`
	OverallDepartmentPerformance []DepartmentPerformance    `json:"overallDepartmentPerformance"`
}

// ============================================================================
// Report Types
// ============================================================================

// GenerateReportRequest describes an event report request. Images are
// attached in order; at most five are accepted.
type GenerateReportRequest struct {
	EventID       string
	EventName     string
	EventType     string
	Description   string
	DynamicFields map[string]any
	Images        []ReportImage
}

type ReportImage struct {
	FileName string
	Data     []byte
}

type GenerateReportResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ReportURL string `json:"report_url"`
	WordURL   string `json:"word_url"`
}

type Selection struct {
	ID string `json:"id"`
}

type PlacementInfo struct {
	TotalRegistered  int `json:"totalRegistered"`
	CompaniesArrived int `json:"companiesArrived"`
	StudentsPlaced   int `json:"studentsPlaced"`
}

type GenerateAnnualReportRequest struct {
	AcademicYear         string        `json:"academicYear"`
	SelectedEvents       []Selection   `json:"selectedEvents"`
	SelectedAchievements []Selection   `json:"selectedAchievements"`
	PlacementInfo        PlacementInfo `json:"placementInfo"`
}

type AnnualReport struct {
	AcademicYear  string    `json:"academic_year"`
	ReportURL     string    `json:"report_url"`
	ReportDocxURL string    `json:"report_docx_url"`
	CreatedAt     time.Time `json:"created_at"`
}

type GenerateAnnualReportResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Report  AnnualReport `json:"report"`
}

// AcademicYearData lists what an academic year's annual report can draw on.
type AcademicYearData struct {
	Events       []Event       `json:"events"`
	Achievements []Achievement `json:"achievements"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
