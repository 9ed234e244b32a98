package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	publicdomain "github.com/sngm3741/unikz/api/internal/public/domain"
)

// ErrInvalid marks input rejected by a value object constructor.
var ErrInvalid = errors.New("invalid")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

var (
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	majorCodePattern = regexp.MustCompile(`^[0-9][A-Z][0-9]{5}$`)
)

type Slug string

func NewSlug(value string) (Slug, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", invalidf("slug is required")
	}
	if len(trimmed) > 80 || !slugPattern.MatchString(trimmed) {
		return "", invalidf("slug must be lowercase latin letters, digits and dashes: %q", value)
	}
	return Slug(trimmed), nil
}

func (s Slug) String() string {
	return string(s)
}

// City is the lowercase latin city code used for filtering.
type City string

func NewCity(value string) (City, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", invalidf("city is required")
	}
	return City(trimmed), nil
}

func (c City) String() string {
	return string(c)
}

type UniversityType publicdomain.UniversityType

func NewUniversityType(value string) (UniversityType, error) {
	if strings.TrimSpace(value) == "" {
		return UniversityType(publicdomain.UniversityPublic), nil
	}
	t, err := publicdomain.ParseUniversityType(value)
	if err != nil {
		return "", invalidf("%v", err)
	}
	return UniversityType(t), nil
}

func (t UniversityType) String() string {
	return string(t)
}

type MajorCategory publicdomain.MajorCategory

func NewMajorCategory(value string) (MajorCategory, error) {
	c, err := publicdomain.ParseMajorCategory(value)
	if err != nil {
		return "", invalidf("%v", err)
	}
	return MajorCategory(c), nil
}

func (c MajorCategory) String() string {
	return string(c)
}

// MajorCode is the national classifier code, e.g. 6B06101.
type MajorCode string

func NewMajorCode(value string) (MajorCode, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return "", invalidf("major code is required")
	}
	if !majorCodePattern.MatchString(trimmed) {
		return "", invalidf("major code has unexpected format: %q", value)
	}
	return MajorCode(trimmed), nil
}

func (c MajorCode) String() string {
	return string(c)
}

type RiasecTypeList []publicdomain.RiasecType

func NewRiasecTypeList(values []string) (RiasecTypeList, error) {
	if len(values) == 0 {
		return nil, invalidf("at least one RIASEC type is required")
	}
	result := make([]publicdomain.RiasecType, 0, len(values))
	seen := make(map[publicdomain.RiasecType]struct{})
	for _, raw := range values {
		t, err := publicdomain.ParseRiasecType(raw)
		if err != nil {
			return nil, invalidf("%v", err)
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return RiasecTypeList(result), nil
}

func (l RiasecTypeList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

type URL string

func NewURL(value string) (URL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	parsed, err := url.ParseRequestURI(trimmed)
	if err != nil || parsed.Host == "" {
		return "", invalidf("invalid url: %s", trimmed)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", invalidf("url must be http or https: %s", trimmed)
	}
	return URL(trimmed), nil
}

func (u URL) String() string {
	return string(u)
}

type Email string

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) > 254 {
		return "", invalidf("email must be at most 254 characters")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", invalidf("invalid email: %s", trimmed)
	}
	return Email(trimmed), nil
}

func (e Email) String() string {
	return string(e)
}

// Ranking is an optional positive national ranking.
type Ranking struct {
	value *int
}

func NewRanking(value *int) (Ranking, error) {
	if value == nil || *value == 0 {
		return Ranking{}, nil
	}
	if *value < 0 {
		return Ranking{}, invalidf("ranking must be positive")
	}
	v := *value
	return Ranking{value: &v}, nil
}

func (r Ranking) Ptr() *int {
	if r.value == nil {
		return nil
	}
	v := *r.value
	return &v
}

// Count is an optional non-negative quantity such as a student count or fee.
type Count struct {
	value *int
}

func NewCount(field string, value *int) (Count, error) {
	if value == nil {
		return Count{}, nil
	}
	if *value < 0 {
		return Count{}, invalidf("%s must not be negative", field)
	}
	v := *value
	return Count{value: &v}, nil
}

func (c Count) Ptr() *int {
	if c.value == nil {
		return nil
	}
	v := *c.value
	return &v
}

// Rate is an optional fraction in [0, 100].
type Rate struct {
	value *float64
}

func NewRate(value *float64) (Rate, error) {
	if value == nil {
		return Rate{}, nil
	}
	if *value < 0 || *value > 100 {
		return Rate{}, invalidf("acceptance rate must be between 0 and 100")
	}
	v := *value
	return Rate{value: &v}, nil
}

func (r Rate) Ptr() *float64 {
	if r.value == nil {
		return nil
	}
	v := *r.value
	return &v
}
