package domain

import "time"

// Platform is the social network a project targets. PlatformAll is a
// filter sentinel only and is never stored on a project.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformFacebook  Platform = "Facebook"
	PlatformAll       Platform = "All"
)

// Valid reports whether p is a storable platform (the All sentinel is not).
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformFacebook:
		return true
	}
	return false
}

// ContentType classifies a scheduled content item.
type ContentType string

const (
	ContentTypePost  ContentType = "Post"
	ContentTypeStory ContentType = "Story"
	ContentTypeReel  ContentType = "Reel"
	ContentTypeVideo ContentType = "Video"
	ContentTypeOther ContentType = "Other"
)

// Status is the workflow stage of a content item. StatusAll is a filter
// sentinel only.
type Status string

const (
	StatusDraft      Status = "Draft"
	StatusInProgress Status = "In Progress"
	StatusScheduled  Status = "Scheduled"
	StatusPublished  Status = "Published"
	StatusAll        Status = "All"
)

// Project is a platform-scoped content calendar. The content list is owned
// exclusively by its project; deleting the project deletes the list with it.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Platform    Platform  `json:"platform"`
	CreatedAt   time.Time `json:"createdAt"`
	Contents    []Content `json:"contents"`
}

// Content is one scheduled post/story/etc. embedded in exactly one project.
// IDs are unique among siblings within the same project.
type Content struct {
	ID                  string      `json:"id"`
	PublishDate         time.Time   `json:"publishDate"`
	ContentType         ContentType `json:"contentType"`
	Copy                string      `json:"copy"`
	Status              Status      `json:"status"`
	LinkToAsset         string      `json:"linkToAsset,omitempty"`
	LinkToPublishedPost string      `json:"linkToPublishedPost,omitempty"`
}

// ContentDraft is a content item before the repository assigns its id.
type ContentDraft struct {
	PublishDate         time.Time   `json:"publishDate"`
	ContentType         ContentType `json:"contentType"`
	Copy                string      `json:"copy"`
	Status              Status      `json:"status"`
	LinkToAsset         string      `json:"linkToAsset,omitempty"`
	LinkToPublishedPost string      `json:"linkToPublishedPost,omitempty"`
}

// ContentPatch is a partial update of a content item. Only the fields set
// here are applied; nil fields leave the stored value untouched. The id is
// deliberately not patchable.
type ContentPatch struct {
	PublishDate         *time.Time   `json:"publishDate,omitempty"`
	ContentType         *ContentType `json:"contentType,omitempty"`
	Copy                *string      `json:"copy,omitempty"`
	Status              *Status      `json:"status,omitempty"`
	LinkToAsset         *string      `json:"linkToAsset,omitempty"`
	LinkToPublishedPost *string      `json:"linkToPublishedPost,omitempty"`
}

// Fields returns the patch as a key/value map holding only the set fields,
// keyed by the stored field names.
func (p ContentPatch) Fields() map[string]any {
	m := map[string]any{}
	if p.PublishDate != nil {
		m["publishDate"] = *p.PublishDate
	}
	if p.ContentType != nil {
		m["contentType"] = *p.ContentType
	}
	if p.Copy != nil {
		m["copy"] = *p.Copy
	}
	if p.Status != nil {
		m["status"] = *p.Status
	}
	if p.LinkToAsset != nil {
		m["linkToAsset"] = *p.LinkToAsset
	}
	if p.LinkToPublishedPost != nil {
		m["linkToPublishedPost"] = *p.LinkToPublishedPost
	}
	return m
}
