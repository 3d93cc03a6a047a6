package validator

// Request DTOs. Gin's JSON binding drops fields these structs do not
// declare, which is the typed replacement for the old "unknown update
// fields are silently ignored" behavior.

type CreateMemberRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	CraftName string `json:"craft_name" validate:"required,max=100"`
	RealName  string `json:"real_name" validate:"omitempty,max=100"`
	Avatar    string `json:"avatar" validate:"omitempty,max=16"`
	Bio       string `json:"bio" validate:"omitempty,max=2000"`
}

type UpdateMemberRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	CraftName *string `json:"craft_name" validate:"omitempty,max=100"`
	RealName  *string `json:"real_name" validate:"omitempty,max=100"`
	Avatar    *string `json:"avatar" validate:"omitempty,max=16"`
	Bio       *string `json:"bio" validate:"omitempty,max=2000"`
	IsActive  *bool   `json:"is_active"`
}

type UpdateModuleStatusRequest struct {
	Status string `json:"status" validate:"required,module_status"`
}

type RecordAttendanceRequest struct {
	EventType  string `json:"event_type" validate:"omitempty,oneof=Sabbat Esbat Other"`
	EventName  string `json:"event_name" validate:"required,max=200"`
	EventDate  string `json:"event_date" validate:"omitempty"`
	Attended   *bool  `json:"attended"`
	Notes      string `json:"notes" validate:"omitempty,max=2000"`
	RecordedBy string `json:"recorded_by" validate:"omitempty,max=100"`
}

type CreateGrimoireEntryRequest struct {
	EntryType string `json:"entry_type" validate:"omitempty,max=50"`
	Title     string `json:"title" validate:"omitempty,max=200"`
	Content   string `json:"content" validate:"omitempty,max=20000"`
	Tags      string `json:"tags" validate:"omitempty,max=500"`
	IsPrivate *bool  `json:"is_private"`
	Category  string `json:"category" validate:"omitempty,grimoire_category"`
}

type UpdateGrimoireEntryRequest struct {
	EntryType *string `json:"entry_type" validate:"omitempty,max=50"`
	Title     *string `json:"title" validate:"omitempty,max=200"`
	Content   *string `json:"content" validate:"omitempty,max=20000"`
	Tags      *string `json:"tags" validate:"omitempty,max=500"`
	IsPrivate *bool   `json:"is_private"`
	Category  *string `json:"category" validate:"omitempty,grimoire_category"`
}
