package models

import "time"

// IssueType eksiklik kaydının türüdür.
type IssueType string

const (
	IssueTypeDeficiency  IssueType = "DEFICIENCY"
	IssueTypeMalfunction IssueType = "MALFUNCTION"
	IssueTypeMaintenance IssueType = "MAINTENANCE"
	IssueTypeComplaint   IssueType = "COMPLAINT"
	IssueTypeSuggestion  IssueType = "SUGGESTION"
	IssueTypeOther       IssueType = "OTHER"
)

// IssuePriority eksiklik önceliğidir.
type IssuePriority string

const (
	IssuePriorityLow    IssuePriority = "LOW"
	IssuePriorityMedium IssuePriority = "MEDIUM"
	IssuePriorityHigh   IssuePriority = "HIGH"
	IssuePriorityUrgent IssuePriority = "URGENT"
)

// IssueStatus eksiklik durumudur.
type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "OPEN"
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	IssueStatusWaiting    IssueStatus = "WAITING"
	IssueStatusResolved   IssueStatus = "RESOLVED"
	IssueStatusClosed     IssueStatus = "CLOSED"
	IssueStatusCancelled  IssueStatus = "CANCELLED"
)

// IsFinal çözülmüş veya kapatılmış durumlar için true döner; bu durumlara geçişte resolvedAt damgalanır.
func (s IssueStatus) IsFinal() bool {
	return s == IssueStatusResolved || s == IssueStatusClosed
}

// Issue eksiklik / arıza / bakım talebidir.
// SiteID ve BlockID, Location'dan türetilir ve filtreleme için saklanır.
type Issue struct {
	BaseModel
	Title         string        `gorm:"type:varchar(255);not null" json:"title"`
	Description   string        `gorm:"type:text" json:"description"`
	Type          IssueType     `gorm:"type:varchar(20);not null;default:'DEFICIENCY';index" json:"type"`
	Priority      IssuePriority `gorm:"type:varchar(20);not null;default:'MEDIUM';index" json:"priority"`
	Status        IssueStatus   `gorm:"type:varchar(20);not null;default:'OPEN';index" json:"status"`
	Location      LocationRef   `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	SiteID        *uint         `gorm:"index" json:"siteId"`
	BlockID       *uint         `gorm:"index" json:"blockId"`
	AssetID       *uint         `gorm:"index" json:"assetId"`
	CreatedByID   uint          `gorm:"not null;index" json:"createdById"`
	AssignedToID  *uint         `gorm:"index" json:"assignedToId"`
	DueDate       *time.Time    `json:"dueDate"`
	EstimatedCost *float64      `gorm:"type:numeric(12,2)" json:"estimatedCost"`
	ActualCost    *float64      `gorm:"type:numeric(12,2)" json:"actualCost"`
	ResolvedAt    *time.Time    `json:"resolvedAt"`

	Site       *Site          `gorm:"foreignKey:SiteID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"site,omitempty"`
	Block      *Block         `gorm:"foreignKey:BlockID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"block,omitempty"`
	Asset      *InventoryItem `gorm:"foreignKey:AssetID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"asset,omitempty"`
	CreatedBy  *User          `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"createdBy,omitempty"`
	AssignedTo *User          `gorm:"foreignKey:AssignedToID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"assignedTo,omitempty"`
	Media      []Media        `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE;" json:"media,omitempty"`
	Comments   []Comment      `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE;" json:"comments,omitempty"`

	// LocationPath hiyerarşi yürünerek doldurulur: "Site > A Blok > 1. Kat > Daire 101"
	LocationPath string `gorm:"-" json:"locationPath"`
	CommentCount *int64 `gorm:"->;-:migration" json:"commentCount,omitempty"`
}

// MediaType eklenen dosyanın türüdür.
type MediaType string

const (
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeDocument MediaType = "DOCUMENT"
)

// Media bir eksikliğe yüklenmiş görsel/video/doküman kaydıdır.
// IdempotencyKey istemci tarafından dosya başına verilir; aynı eksiklikte tekrar kullanılamaz.
type Media struct {
	BaseModel
	IssueID        uint      `gorm:"not null;index;uniqueIndex:idx_media_issue_key" json:"issueId"`
	Type           MediaType `gorm:"type:varchar(20);not null" json:"type"`
	URL            string    `gorm:"type:varchar(500);not null" json:"url"`
	StorageKey     string    `gorm:"type:varchar(255)" json:"-"`
	Filename       string    `gorm:"type:varchar(255)" json:"filename"`
	ContentType    string    `gorm:"type:varchar(100)" json:"contentType"`
	Size           int64     `json:"size"`
	Description    string    `gorm:"type:text" json:"description"`
	IdempotencyKey *string   `gorm:"type:varchar(100);uniqueIndex:idx_media_issue_key" json:"idempotencyKey,omitempty"`
}

// Comment eksiklik üzerine yazılmış yorumdur.
type Comment struct {
	BaseModel
	IssueID uint   `gorm:"not null;index" json:"issueId"`
	UserID  uint   `gorm:"not null;index" json:"userId"`
	Content string `gorm:"type:text;not null" json:"content"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user,omitempty"`
}
