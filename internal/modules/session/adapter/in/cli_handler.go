package in

import (
	"context"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	sessiondto "chatreport/internal/modules/session/dto"
	sessionin "chatreport/internal/modules/session/port/in"
	apperrors "chatreport/internal/platform/errors"
)

// Args carries flag values exactly as typed on the command line.
type Args struct {
	UserMessages     string
	AIResponses      string
	ValidationErrors string
	CTALeft          string
	SessionTime      string
	SummaryPath      string
}

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Generate parses args and runs the report pipeline. Text that cannot be
// read as a number or boolean yields an *apperrors.UsageError; parsed values
// that break a constraint are left to validation.
func (h CLIHandler) Generate(ctx context.Context, args Args) (sessiondto.GenerateOutput, error) {
	input, err := ParseArgs(args)
	if err != nil {
		return sessiondto.GenerateOutput{}, err
	}
	return h.usecase.Generate(ctx, input)
}

func ParseArgs(args Args) (sessiondto.GenerateInput, error) {
	userMessages, err := parseNumber("user_messages", args.UserMessages)
	if err != nil {
		return sessiondto.GenerateInput{}, err
	}
	aiResponses, err := parseNumber("ai_responses", args.AIResponses)
	if err != nil {
		return sessiondto.GenerateInput{}, err
	}
	validationErrors, err := parseNumber("validation_errors", args.ValidationErrors)
	if err != nil {
		return sessiondto.GenerateInput{}, err
	}
	ctaLeft, err := parseFlag("cta_left", args.CTALeft)
	if err != nil {
		return sessiondto.GenerateInput{}, err
	}
	sessionTime, err := parseNumber("session_time", args.SessionTime)
	if err != nil {
		return sessiondto.GenerateInput{}, err
	}
	summaryPath, err := parseSummaryPath(args.SummaryPath)
	if err != nil {
		return sessiondto.GenerateInput{}, err
	}
	return sessiondto.GenerateInput{
		UserMessages:     userMessages,
		AIResponses:      aiResponses,
		ValidationErrors: validationErrors,
		SessionTime:      sessionTime,
		CTALeft:          &ctaLeft,
		SummaryPath:      summaryPath,
	}, nil
}

var numberPattern = regexp.MustCompile(`^[+-]?([0-9]+)(?:\.([0-9]+))?$`)

// parseNumber reads plain decimal text. Exponents, hex and digit separators
// are usage errors. A non-zero fraction parses to NaN so validation reports
// the field as not an integer, however many digits the fraction has.
func parseNumber(flag, raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	match := numberPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, &apperrors.UsageError{Flag: flag, Value: raw, Reason: "expected a number"}
	}
	if strings.Trim(match[2], "0") != "" {
		return math.NaN(), nil
	}

	whole := strings.TrimPrefix(text, "+")
	if i := strings.IndexByte(whole, '.'); i >= 0 {
		whole = whole[:i]
	}
	value, err := strconv.ParseInt(whole, 10, 64)
	if err == nil {
		return float64(value), nil
	}
	// Out of int64 range is still a number; validation rejects it by size.
	huge, ferr := strconv.ParseFloat(whole, 64)
	if ferr != nil {
		return 0, &apperrors.UsageError{Flag: flag, Value: raw, Reason: "expected a number"}
	}
	return huge, nil
}

func parseFlag(flag, raw string) (bool, error) {
	switch {
	case strings.EqualFold(strings.TrimSpace(raw), "true"):
		return true, nil
	case strings.EqualFold(strings.TrimSpace(raw), "false"):
		return false, nil
	default:
		return false, &apperrors.UsageError{Flag: flag, Value: raw, Reason: "expected true or false"}
	}
}

var summaryFormats = map[string]bool{".yaml": true, ".yml": true, ".json": true}

func parseSummaryPath(raw string) (string, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return "", nil
	}
	if !summaryFormats[strings.ToLower(filepath.Ext(path))] {
		return "", &apperrors.UsageError{Flag: "summary", Value: raw, Reason: "expected a .yaml, .yml or .json file"}
	}
	return path, nil
}
