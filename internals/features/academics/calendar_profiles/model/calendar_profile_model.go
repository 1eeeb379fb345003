// file: internals/features/academics/calendar_profiles/model/calendar_profile_model.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var monthDayRe = regexp.MustCompile(`^(\d{2})-(\d{2})$`)

// MonthDayValid reports whether s is a plausible "MM-DD" boundary.
func MonthDayValid(s string) bool {
	m := monthDayRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	month := (int(m[1][0]-'0') * 10) + int(m[1][1]-'0')
	day := (int(m[2][0]-'0') * 10) + int(m[2][1]-'0')
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// TermSpec is one abstract term boundary pair inside a profile. Dates are
// month-day only; the calculator anchors them to a concrete academic year.
type TermSpec struct {
	Label         string `json:"label"`
	StartMonthDay string `json:"start_month_day"`
	EndMonthDay   string `json:"end_month_day"`
}

func (t TermSpec) Validate() error {
	if strings.TrimSpace(t.Label) == "" {
		return errors.New("term label is required")
	}
	if !MonthDayValid(t.StartMonthDay) {
		return fmt.Errorf("term %q: start_month_day %q must be MM-DD", t.Label, t.StartMonthDay)
	}
	if !MonthDayValid(t.EndMonthDay) {
		return fmt.Errorf("term %q: end_month_day %q must be MM-DD", t.Label, t.EndMonthDay)
	}
	return nil
}

// TermSpecList is the ordered term list, stored as jsonb but typed at the
// store boundary; term specs are never re-parsed ad hoc at call sites.
type TermSpecList []TermSpec

func (l TermSpecList) Value() (driver.Value, error) {
	if l == nil {
		l = TermSpecList{}
	}
	return json.Marshal(l)
}

func (l *TermSpecList) Scan(v any) error {
	switch src := v.(type) {
	case nil:
		*l = TermSpecList{}
		return nil
	case []byte:
		return json.Unmarshal(src, l)
	case string:
		return json.Unmarshal([]byte(src), l)
	default:
		return fmt.Errorf("cannot scan %T into TermSpecList", v)
	}
}

func (TermSpecList) GormDataType() string { return "jsonb" }

func (l TermSpecList) Validate() error {
	if len(l) == 0 {
		return errors.New("profile needs at least one term")
	}
	for _, t := range l {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type CalendarProfileModel struct {
	CalendarProfileID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:calendar_profile_id" json:"calendar_profile_id"`
	CalendarProfileCode string    `gorm:"type:text;not null;column:calendar_profile_code" json:"calendar_profile_code"`
	CalendarProfileName string    `gorm:"type:text;not null;column:calendar_profile_name" json:"calendar_profile_name"`
	// Free-text calendar shape label, e.g. "2-Term", "3-Term", "Shifted Intake"
	CalendarProfileModel string `gorm:"type:text;not null;default:'';column:calendar_profile_model" json:"calendar_profile_model"`
	// "MM-DD" year boundary; nil falls back to the July 1 convention
	CalendarProfileAnchorMonthDay *string      `gorm:"type:text;column:calendar_profile_anchor_month_day" json:"calendar_profile_anchor_month_day,omitempty"`
	CalendarProfileTerms          TermSpecList `gorm:"type:jsonb;not null;column:calendar_profile_terms" json:"calendar_profile_terms"`

	// Locked once any assignment references the profile; edited by cloning.
	CalendarProfileIsLocked bool `gorm:"not null;default:false;column:calendar_profile_is_locked" json:"calendar_profile_is_locked"`
	CalendarProfileIsSystem bool `gorm:"not null;default:false;column:calendar_profile_is_system" json:"calendar_profile_is_system"`

	CalendarProfileCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:calendar_profile_created_at" json:"calendar_profile_created_at"`
	CalendarProfileUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:calendar_profile_updated_at" json:"calendar_profile_updated_at"`
	CalendarProfileDeletedAt gorm.DeletedAt `gorm:"column:calendar_profile_deleted_at;index" json:"calendar_profile_deleted_at,omitempty"`
}

func (CalendarProfileModel) TableName() string { return "calendar_profiles" }

func (m *CalendarProfileModel) BeforeSave(tx *gorm.DB) error {
	m.CalendarProfileCode = strings.TrimSpace(m.CalendarProfileCode)
	m.CalendarProfileName = strings.TrimSpace(m.CalendarProfileName)
	if m.CalendarProfileCode == "" {
		return errors.New("calendar_profile_code is required")
	}
	if m.CalendarProfileAnchorMonthDay != nil {
		a := strings.TrimSpace(*m.CalendarProfileAnchorMonthDay)
		if a == "" {
			m.CalendarProfileAnchorMonthDay = nil
		} else {
			if !MonthDayValid(a) {
				return fmt.Errorf("anchor_month_day %q must be MM-DD", a)
			}
			m.CalendarProfileAnchorMonthDay = &a
		}
	}
	return m.CalendarProfileTerms.Validate()
}
