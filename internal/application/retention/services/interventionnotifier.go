package services

import (
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/goroutine"
	"pulsegym/internal/shared/logger"
)

// OutreachSender delivers a retention email to one member.
type OutreachSender interface {
	SendRetentionEmail(to, memberName string, level retention.RiskLevel) error
}

// InterventionNotifier turns high-risk assessments into outreach. Dispatch
// is fire-and-forget so assessment requests never block on SMTP.
type InterventionNotifier struct {
	sender OutreachSender
	logger logger.Interface
}

func NewInterventionNotifier(sender OutreachSender, logger logger.Interface) *InterventionNotifier {
	return &InterventionNotifier{sender: sender, logger: logger}
}

// NotifyIfNeeded sends outreach when the assessment is high or critical and
// recommends an email intervention. A nil sender disables dispatch.
func (n *InterventionNotifier) NotifyIfNeeded(m *retention.Member, a *retention.RiskAssessment) {
	if n.sender == nil || m.Email == "" {
		return
	}
	if !a.Level.AtLeast(retention.RiskLevelHigh) {
		return
	}

	wantsEmail := false
	for _, iv := range a.Interventions {
		if iv == retention.InterventionEmail {
			wantsEmail = true
			break
		}
	}
	if !wantsEmail {
		return
	}

	to := m.Email
	name := m.Name
	memberID := m.ID
	level := a.Level
	goroutine.SafeGo(n.logger, "intervention-email", func() {
		if err := n.sender.SendRetentionEmail(to, name, level); err != nil {
			n.logger.Warnw("failed to send retention email", "error", err, "member_id", memberID)
		}
	})
}
