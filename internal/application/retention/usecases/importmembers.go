package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"pulsegym/internal/application/retention/services"
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/errors"
	"pulsegym/internal/shared/id"
	"pulsegym/internal/shared/logger"
)

// ImportRowResult reports the outcome for one CSV row.
type ImportRowResult struct {
	Row      int    `json:"row"`
	MemberID string `json:"member_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Imported int               `json:"imported"`
	Failed   int               `json:"failed"`
	Rows     []ImportRowResult `json:"rows"`
}

// ImportMembersUseCase ingests member rows from CSV. Imported members go
// through the same validity rules as any other member; the engine does not
// distinguish them.
type ImportMembersUseCase struct {
	members services.MemberRepository
	logger  logger.Interface
}

func NewImportMembersUseCase(members services.MemberRepository, logger logger.Interface) *ImportMembersUseCase {
	return &ImportMembersUseCase{members: members, logger: logger}
}

func (uc *ImportMembersUseCase) Execute(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewBadRequestError("empty or unreadable CSV", err.Error())
	}
	colIdx, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			result.Failed++
			result.Rows = append(result.Rows, ImportRowResult{Row: row, Error: err.Error()})
			continue
		}

		member, err := uc.parseRow(record, colIdx)
		if err != nil {
			result.Failed++
			result.Rows = append(result.Rows, ImportRowResult{Row: row, Error: err.Error()})
			continue
		}

		if err := uc.members.Upsert(ctx, member); err != nil {
			uc.logger.Errorw("failed to upsert imported member", "error", err, "member_id", member.ID)
			result.Failed++
			result.Rows = append(result.Rows, ImportRowResult{Row: row, MemberID: member.ID, Error: "failed to save member"})
			continue
		}

		result.Imported++
		result.Rows = append(result.Rows, ImportRowResult{Row: row, MemberID: member.ID})
	}

	uc.logger.Infow("member import completed", "imported", result.Imported, "failed", result.Failed)
	return result, nil
}

func mapColumns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"name", "member_since"} {
		if _, ok := idx[required]; !ok {
			return nil, errors.NewBadRequestError(fmt.Sprintf("missing required column %q", required))
		}
	}
	return idx, nil
}

func (uc *ImportMembersUseCase) parseRow(record []string, colIdx map[string]int) (*retention.Member, error) {
	get := func(col string) string {
		i, ok := colIdx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := get("name")
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	memberSince, err := time.Parse(time.RFC3339, get("member_since"))
	if err != nil {
		// Accept bare dates as a convenience for spreadsheet exports.
		memberSince, err = time.Parse("2006-01-02", get("member_since"))
		if err != nil {
			return nil, fmt.Errorf("invalid member_since: %w", err)
		}
	}

	memberID := get("member_id")
	if memberID == "" {
		memberID, err = id.NewMemberID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate member ID: %w", err)
		}
	}

	status := retention.MemberStatus(get("status"))
	if status == "" {
		status = retention.MemberStatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	var checkIns []time.Time
	if raw := get("check_ins"); raw != "" {
		for _, part := range strings.Split(raw, ";") {
			t, err := time.Parse(time.RFC3339, strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("invalid check-in timestamp %q: %w", part, err)
			}
			checkIns = append(checkIns, t)
		}
	}

	var tags []string
	if raw := get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ";") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return &retention.Member{
		ID:             memberID,
		Name:           name,
		Email:          get("email"),
		Phone:          get("phone"),
		PlanID:         get("plan_id"),
		Status:         status,
		CheckInHistory: checkIns,
		MemberSince:    memberSince.UTC(),
		Tags:           tags,
	}, nil
}
