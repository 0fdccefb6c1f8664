// Package digest defines the payloads exchanged between the bot and the
// reporter. Both travel as google.protobuf.Struct so that Kafka and gRPC
// share one encoding.
package digest

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const dateLayout = "2006-01-02"

const (
	fieldRequestID     = "request_id"
	fieldUserID        = "user_id"
	fieldReferenceDate = "reference_date"
	fieldSource        = "source"
	fieldKind          = "kind"
	fieldText          = "text"
	fieldError         = "error"
)

const (
	SourceCommand  = "command"
	SourceSchedule = "schedule"
)

// Request asks the reporter to build a digest for one user. A zero
// ReferenceDate means "today" on the reporter's clock.
type Request struct {
	RequestID     string
	UserID        int64
	ReferenceDate time.Time
	Source        string
}

func (r Request) Marshal() ([]byte, error) {
	fields := map[string]interface{}{
		fieldRequestID: r.RequestID,
		fieldUserID:    strconv.FormatInt(r.UserID, 10),
		fieldSource:    r.Source,
	}
	if !r.ReferenceDate.IsZero() {
		fields[fieldReferenceDate] = r.ReferenceDate.Format(dateLayout)
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	return proto.Marshal(s)
}

func UnmarshalRequest(raw []byte, loc *time.Location) (Request, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(raw, &s); err != nil {
		return Request{}, errors.Wrap(err, "unmarshal request")
	}
	fields := s.GetFields()

	userID, err := strconv.ParseInt(fields[fieldUserID].GetStringValue(), 10, 64)
	if err != nil {
		return Request{}, errors.Wrap(err, "request user id")
	}
	req := Request{
		RequestID: fields[fieldRequestID].GetStringValue(),
		UserID:    userID,
		Source:    fields[fieldSource].GetStringValue(),
	}
	if raw := fields[fieldReferenceDate].GetStringValue(); raw != "" {
		req.ReferenceDate, err = time.ParseInLocation(dateLayout, raw, loc)
		if err != nil {
			return Request{}, errors.Wrap(err, "request reference date")
		}
	}
	return req, nil
}

// Result is a rendered digest on its way back to the user.
type Result struct {
	UserID int64
	Kind   string
	Text   string
	Error  string
}

func (r Result) Success() bool {
	return r.Error == ""
}

func (r Result) ToStruct() (*structpb.Struct, error) {
	s, err := structpb.NewStruct(map[string]interface{}{
		fieldUserID: strconv.FormatInt(r.UserID, 10),
		fieldKind:   r.Kind,
		fieldText:   r.Text,
		fieldError:  r.Error,
	})
	return s, errors.Wrap(err, "build result")
}

func ResultFromStruct(s *structpb.Struct) (Result, error) {
	fields := s.GetFields()
	userID, err := strconv.ParseInt(fields[fieldUserID].GetStringValue(), 10, 64)
	if err != nil {
		return Result{}, errors.Wrap(err, "result user id")
	}
	return Result{
		UserID: userID,
		Kind:   fields[fieldKind].GetStringValue(),
		Text:   fields[fieldText].GetStringValue(),
		Error:  fields[fieldError].GetStringValue(),
	}, nil
}
