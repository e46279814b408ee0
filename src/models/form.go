package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldType is the closed set of inputs a form can contain.
type FieldType string

const (
	FieldShortText   FieldType = "short_text"
	FieldLongText    FieldType = "long_text"
	FieldEmail       FieldType = "email"
	FieldNumber      FieldType = "number"
	FieldDate        FieldType = "date"
	FieldDropdown    FieldType = "dropdown"
	FieldCheckbox    FieldType = "checkbox"
	FieldRadio       FieldType = "radio"
	FieldFile        FieldType = "file"
	FieldRating      FieldType = "rating"
	FieldMatrix      FieldType = "matrix"
	FieldSignature   FieldType = "signature"
	FieldImageChoice FieldType = "image_choice"
)

// FieldTypes lists every supported type in declaration order.
var FieldTypes = []FieldType{
	FieldShortText, FieldLongText, FieldEmail, FieldNumber, FieldDate,
	FieldDropdown, FieldCheckbox, FieldRadio, FieldFile, FieldRating,
	FieldMatrix, FieldSignature, FieldImageChoice,
}

// AnalyticsKind groups field types by how their answers are aggregated.
type AnalyticsKind int

const (
	KindText AnalyticsKind = iota
	KindChoice
	KindRating
	KindNumeric
)

// Kind maps every declared type explicitly; unknown types from legacy
// documents aggregate as text.
func (t FieldType) Kind() AnalyticsKind {
	switch t {
	case FieldRadio, FieldDropdown, FieldCheckbox:
		return KindChoice
	case FieldRating:
		return KindRating
	case FieldNumber:
		return KindNumeric
	case FieldShortText, FieldLongText, FieldEmail, FieldDate, FieldFile,
		FieldMatrix, FieldSignature, FieldImageChoice:
		return KindText
	}
	return KindText
}

func (t FieldType) Valid() bool {
	for _, ft := range FieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// NeedsOptions reports whether the type is meaningless without an option list.
func (t FieldType) NeedsOptions() bool {
	switch t {
	case FieldDropdown, FieldRadio, FieldCheckbox, FieldImageChoice:
		return true
	}
	return false
}

type FieldWidth string

const (
	WidthFull FieldWidth = "full"
	WidthHalf FieldWidth = "half"
)

type LogicOperator string

const (
	OpEquals    LogicOperator = "equals"
	OpNotEquals LogicOperator = "not_equals"
	OpContains  LogicOperator = "contains"
)

// DefaultRatingOptions is used when a rating field has no options configured.
var DefaultRatingOptions = []string{"1", "2", "3", "4", "5"}

// --- Field ---
type Field struct {
	ID            string           `bson:"_id" json:"id" validate:"required"`
	Type          FieldType        `bson:"type" json:"type" validate:"required"`
	Label         string           `bson:"label" json:"label" validate:"required"`
	Placeholder   string           `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required      bool             `bson:"required" json:"required"`
	Options       []string         `bson:"options,omitempty" json:"options,omitempty"`
	Validation    *FieldValidation `bson:"validation,omitempty" json:"validation,omitempty"`
	Width         FieldWidth       `bson:"width,omitempty" json:"width,omitempty"`
	Order         int              `bson:"order" json:"order"`
	Logic         *FieldLogic      `bson:"logic,omitempty" json:"logic,omitempty"`
	MatrixRows    []string         `bson:"matrixRows,omitempty" json:"matrixRows,omitempty"`
	MatrixColumns []string         `bson:"matrixColumns,omitempty" json:"matrixColumns,omitempty"`
}

type FieldValidation struct {
	Min          *float64 `bson:"min,omitempty" json:"min,omitempty"`
	Max          *float64 `bson:"max,omitempty" json:"max,omitempty"`
	Regex        string   `bson:"regex,omitempty" json:"regex,omitempty"`
	ErrorMessage string   `bson:"errorMessage,omitempty" json:"errorMessage,omitempty"`
}

// FieldLogic shows the owning field only when another field's value matches.
type FieldLogic struct {
	ShowWhenFieldID string        `bson:"showWhenFieldId" json:"showWhenFieldId"`
	Operator        LogicOperator `bson:"operator" json:"operator"`
	Value           string        `bson:"value" json:"value"`
}

// RatingOptions returns the configured options or the 1..5 default.
func (f Field) RatingOptions() []string {
	if len(f.Options) == 0 {
		return DefaultRatingOptions
	}
	return f.Options
}

// --- Form ---
type Form struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User           primitive.ObjectID `bson:"user" json:"user,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Subtitle       string             `bson:"subtitle" json:"subtitle"`
	Date           string             `bson:"date" json:"date"`
	Time           string             `bson:"time" json:"time"`
	Location       string             `bson:"location" json:"location"`
	OrganizerName  string             `bson:"organizerName" json:"organizerName"`
	OrganizerEmail string             `bson:"organizerEmail" json:"organizerEmail"`
	OrganizerPhone string             `bson:"organizerPhone" json:"organizerPhone"`
	CustomDetails  []CustomDetail     `bson:"customDetails" json:"customDetails"`
	Fields         []Field            `bson:"fields" json:"fields"`
	Settings       FormSettings       `bson:"settings" json:"settings"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CustomDetail struct {
	Label string `bson:"label" json:"label" validate:"required"`
	Value string `bson:"value" json:"value" validate:"required"`
}

type FormSettings struct {
	IsPublic                 bool      `bson:"isPublic" json:"isPublic"`
	NotificationEmail        string    `bson:"notificationEmail,omitempty" json:"notificationEmail,omitempty"`
	NotifyOnSubmission       bool      `bson:"notifyOnSubmission" json:"notifyOnSubmission"`
	Theme                    FormTheme `bson:"theme" json:"theme"`
	AllowMultipleSubmissions bool      `bson:"allowMultipleSubmissions" json:"allowMultipleSubmissions"`
}

type FormTheme struct {
	PrimaryColor string `bson:"primaryColor" json:"primaryColor"`
	AccentColor  string `bson:"accentColor" json:"accentColor"`
	Background   string `bson:"background" json:"background"`
}

// FieldByID returns the field with the given id, if any.
func (f *Form) FieldByID(id string) (Field, bool) {
	for _, fld := range f.Fields {
		if fld.ID == id {
			return fld, true
		}
	}
	return Field{}, false
}

// FieldIDs returns the set of current field ids.
func (f *Form) FieldIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(f.Fields))
	for _, fld := range f.Fields {
		ids[fld.ID] = struct{}{}
	}
	return ids
}

// Status is "Active" for public forms and "Draft" otherwise.
func (f *Form) Status() string {
	if f.Settings.IsPublic {
		return "Active"
	}
	return "Draft"
}

// FormPayload is the body accepted by create and update.
type FormPayload struct {
	Title          *string        `json:"title"`
	Description    *string        `json:"description"`
	Subtitle       *string        `json:"subtitle"`
	Date           *string        `json:"date"`
	Time           *string        `json:"time"`
	Location       *string        `json:"location"`
	OrganizerName  *string        `json:"organizerName"`
	OrganizerEmail *string        `json:"organizerEmail" validate:"omitempty,email"`
	OrganizerPhone *string        `json:"organizerPhone"`
	CustomDetails  []CustomDetail `json:"customDetails" validate:"omitempty,dive"`
	Fields         []Field        `json:"fields" validate:"omitempty,dive"`
	Settings       *FormSettings  `json:"settings"`
}

// PublicForm is a form without its owner, served to respondents.
type PublicForm struct {
	ID             primitive.ObjectID `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Subtitle       string             `json:"subtitle"`
	Date           string             `json:"date"`
	Time           string             `json:"time"`
	Location       string             `json:"location"`
	OrganizerName  string             `json:"organizerName"`
	OrganizerEmail string             `json:"organizerEmail"`
	OrganizerPhone string             `json:"organizerPhone"`
	CustomDetails  []CustomDetail     `json:"customDetails"`
	Fields         []Field            `json:"fields"`
	Settings       FormSettings       `json:"settings"`
}

// Public drops the owner and the notification address.
func (f *Form) Public() PublicForm {
	settings := f.Settings
	settings.NotificationEmail = ""
	return PublicForm{
		ID:             f.ID,
		Title:          f.Title,
		Description:    f.Description,
		Subtitle:       f.Subtitle,
		Date:           f.Date,
		Time:           f.Time,
		Location:       f.Location,
		OrganizerName:  f.OrganizerName,
		OrganizerEmail: f.OrganizerEmail,
		OrganizerPhone: f.OrganizerPhone,
		CustomDetails:  f.CustomDetails,
		Fields:         f.Fields,
		Settings:       settings,
	}
}
