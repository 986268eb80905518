package models

// Plan is the billing plan of a team
type Plan string

const (
	PlanFree      Plan = "free"
	PlanPro       Plan = "pro"
	PlanBusiness  Plan = "business"
	PlanDatarooms Plan = "datarooms"
)

// IsValid checks if the Plan is valid
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro, PlanBusiness, PlanDatarooms:
		return true
	}
	return false
}

// Role is the role of a user inside a team
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

// CanManage reports whether the role may change team content settings
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}

// MemberStatus tracks whether a membership is usable
type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "ACTIVE"
	MemberStatusBlocked MemberStatus = "BLOCKED"
)

// DocumentType is the coarse kind of an uploaded file
type DocumentType string

const (
	DocumentTypePDF    DocumentType = "pdf"
	DocumentTypeSheet  DocumentType = "sheet"
	DocumentTypeDocs   DocumentType = "docs"
	DocumentTypeSlides DocumentType = "slides"
	DocumentTypeImage  DocumentType = "image"
	DocumentTypeVideo  DocumentType = "video"
	DocumentTypeZip    DocumentType = "zip"
	DocumentTypeNotion DocumentType = "notion"
)

// StorageType names the backend holding a document's bytes
type StorageType string

const (
	StorageTypeS3    StorageType = "S3_PATH"
	StorageTypeMinIO StorageType = "MINIO_PATH"
)

// LinkType distinguishes document links from dataroom links
type LinkType string

const (
	LinkTypeDocument LinkType = "DOCUMENT_LINK"
	LinkTypeDataroom LinkType = "DATAROOM_LINK"
)

// ViewType distinguishes document views from dataroom views
type ViewType string

const (
	ViewTypeDocument ViewType = "DOCUMENT_VIEW"
	ViewTypeDataroom ViewType = "DATAROOM_VIEW"
)

// DeliveryStatus is the state of a webhook delivery
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusSucceeded DeliveryStatus = "SUCCEEDED"
	DeliveryStatusFailed    DeliveryStatus = "FAILED"
)

// NotificationType classifies in-app notifications
type NotificationType string

const (
	NotificationTypeDocumentView NotificationType = "DOCUMENT_VIEW"
	NotificationTypeDataroomView NotificationType = "DATAROOM_VIEW"
	NotificationTypeInvitation   NotificationType = "INVITATION"
)

// TokenPurpose says what a verification token unlocks
type TokenPurpose string

const (
	TokenPurposeLogin   TokenPurpose = "LOGIN"
	TokenPurposeLinkOTP TokenPurpose = "LINK_OTP"
)

// Webhook event names
const (
	EventDocumentCreated = "document.created"
	EventLinkCreated     = "link.created"
	EventLinkViewed      = "link.viewed"
	EventDataroomCreated = "dataroom.created"
)

// WebhookEvents lists every event a webhook may subscribe to
var WebhookEvents = []string{EventDocumentCreated, EventLinkCreated, EventLinkViewed, EventDataroomCreated}
