package storage

import "time"

// CredentialModel is the GORM model for credentials table
type CredentialModel struct {
	AccessToken   string `gorm:"not null;default:''"` // sealed
	AccountID     string `gorm:"not null;uniqueIndex:idx_credential_account"`
	CreatedAt     time.Time
	ExpiresAt     *time.Time `gorm:"default:null"`
	ID            string     `gorm:"primaryKey"`
	InvalidReason string     `gorm:"not null;default:''"`
	InvalidatedAt *time.Time `gorm:"default:null"`
	IsActive      bool       `gorm:"not null;default:true;index:idx_credential_active"`
	IsPrimary     bool       `gorm:"not null;default:false"`
	Meta          string     `gorm:"not null;default:'{}'"` // JSON, shape depends on provider
	Provider      string     `gorm:"not null;uniqueIndex:idx_credential_account;index:idx_credential_active;check:provider IN ('google','jira')"`
	RefreshToken  string     `gorm:"not null;default:''"` // sealed
	Scopes        string     `gorm:"not null;default:''"`
	TokenType     string     `gorm:"not null;default:''"`
	UpdatedAt     time.Time
	UserID        string `gorm:"not null;uniqueIndex:idx_credential_account;index:idx_credential_active"`
	Version       int    `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (CredentialModel) TableName() string { return "credentials" }

// ExternalEventModel is the GORM model for external_events table
type ExternalEventModel struct {
	AccountID           string   `gorm:"not null;default:''"`
	AllDay              bool     `gorm:"not null;default:false"`
	Attendees           []string `gorm:"serializer:json"`
	CalendarID          string   `gorm:"not null;uniqueIndex:idx_event_key"`
	CreatedAt           time.Time
	DeletedAt           *time.Time `gorm:"default:null"`
	Description         string     `gorm:"not null;default:''"`
	EndTime             time.Time  `gorm:"not null"`
	ExternalID          string     `gorm:"not null;uniqueIndex:idx_event_key"`
	HTMLLink            string     `gorm:"not null;default:''"`
	ID                  string     `gorm:"primaryKey"`
	IssueKey            string     `gorm:"not null;default:''"`
	IssueStatusCategory string     `gorm:"not null;default:''"`
	LastSyncAt          time.Time  `gorm:"not null"`
	Location            string     `gorm:"not null;default:''"`
	Origin              string     `gorm:"not null;index:idx_event_origin;check:origin IN ('calendar','issue')"`
	RecurrenceRule      string     `gorm:"not null;default:''"`
	StartTime           time.Time  `gorm:"not null;index:idx_event_start"`
	Status              string     `gorm:"not null;default:''"`
	SyncState           string     `gorm:"not null;default:'synced';check:sync_state IN ('synced','deleted')"`
	Title               string     `gorm:"not null;default:''"`
	UpdatedAt           time.Time
	UserID              string `gorm:"not null;uniqueIndex:idx_event_key;index:idx_event_origin;index:idx_event_start"`
}

// TableName specifies the table name for GORM
func (ExternalEventModel) TableName() string { return "external_events" }

// TaskSessionModel is the GORM model for task_sessions table
type TaskSessionModel struct {
	ActualDuration    *time.Duration `gorm:"default:null"`
	CreatedAt         time.Time
	EndTime           *time.Time     `gorm:"default:null"`
	EstimatedDuration *time.Duration `gorm:"default:null"`
	EventID           string         `gorm:"not null;index:idx_session_event"`
	ID                string         `gorm:"primaryKey"`
	IsMainTask        bool           `gorm:"not null;default:false"`
	Notes             string         `gorm:"not null;default:''"`
	Rating            *int           `gorm:"default:null"`
	StartTime         time.Time      `gorm:"not null;index:idx_session_start"`
	Status            string         `gorm:"not null;index:idx_session_status;check:status IN ('active','paused','completed','overrun','cancelled')"`
	UpdatedAt         time.Time
	UserID            string `gorm:"not null;index:idx_session_status;index:idx_session_start"`
}

// TableName specifies the table name for GORM
func (TaskSessionModel) TableName() string { return "task_sessions" }

// TimeManagerStateModel is the GORM model for time_manager_states table
type TimeManagerStateModel struct {
	CreatedAt         time.Time
	CurrentMainTaskID *string                     `gorm:"default:null"`
	DailyStats        map[string]dailyStatsRecord `gorm:"serializer:json"`
	DefaultEstimate   time.Duration               `gorm:"not null"`
	OverrunThreshold  time.Duration               `gorm:"not null"`
	SubTaskIDs        []string                    `gorm:"serializer:json"`
	Timezone          string                      `gorm:"not null;default:''"`
	UpdatedAt         time.Time
	UserID            string `gorm:"primaryKey"`
	Version           int    `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (TimeManagerStateModel) TableName() string { return "time_manager_states" }

// dailyStatsRecord is the JSON shape of one day of statistics
type dailyStatsRecord struct {
	EstimatedTime  time.Duration `json:"estimated_time"`
	TasksCompleted int           `json:"tasks_completed"`
	TimeVariance   time.Duration `json:"time_variance"`
	TotalTimeSpent time.Duration `json:"total_time_spent"`
}
