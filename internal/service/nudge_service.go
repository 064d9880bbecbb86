package service

import (
	"bytes"
	"fmt"
	"html/template"
	"stepup_backend/internal/catalog"
	"stepup_backend/internal/model"
	"stepup_backend/pkg/logger"
	"stepup_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

// ProfileSource yields every registered learner. Satisfied by
// repository.UserRepository; kept narrow so batch tests can stub it.
type ProfileSource interface {
	FindAll() ([]model.User, error)
}

type NudgeResult struct {
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type NudgeReport struct {
	Total   int           `json:"total"`
	Sent    int           `json:"sent"`
	Results []NudgeResult `json:"results"`
}

type NudgeService struct {
	Profiles ProfileSource
	Mailer   Mailer
	AppURL   string
}

func NewNudgeService(profiles ProfileSource, mailer Mailer, appURL string) *NudgeService {
	return &NudgeService{
		Profiles: profiles,
		Mailer:   mailer,
		AppURL:   appURL,
	}
}

// DaysSince counts whole days between the stored last-active date
// (taken as UTC midnight) and now. This deliberately ignores the
// IST day boundary the streak uses; the copy reads as elapsed time,
// not calendar days. Returns false when the learner was never active.
func DaysSince(lastActiveDate string, now time.Time) (int, bool) {
	if lastActiveDate == "" {
		return 0, false
	}
	t, err := time.ParseInLocation("2006-01-02", lastActiveDate, time.UTC)
	if err != nil {
		return 0, false
	}
	diff := now.Sub(t)
	if diff < 0 {
		return 0, true
	}
	return int(diff / (24 * time.Hour)), true
}

// StatusLine picks the nudge copy from streak state. Three variants:
// an active streak to keep, a lapsed streak to rebuild, or a neutral
// pointer at the learner's track.
func StatusLine(streakCount int, trackName string, daysSince int, hasDays bool) template.HTML {
	switch {
	case streakCount > 0 && hasDays && daysSince <= 1:
		return template.HTML(fmt.Sprintf("You're on a <strong>%d-day streak</strong> 🔥 Keep it going!", streakCount))
	case hasDays && daysSince > 1:
		return template.HTML(fmt.Sprintf("You haven't checked in for <strong>%d days</strong>. Your streak is waiting to be rebuilt — jump back in!", daysSince))
	default:
		return template.HTML(fmt.Sprintf("Your track: <strong>%s</strong>. Pick up where you left off!", template.HTMLEscapeString(trackName)))
	}
}

var nudgeTemplate = template.Must(template.New("nudge").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Your weekly StepUp nudge</title>
</head>
<body style="margin:0;padding:0;background:#F8F9FA;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background:#F8F9FA;padding:40px 16px;">
    <tr>
      <td align="center">
        <table width="100%" cellpadding="0" cellspacing="0" style="max-width:520px;">

          <tr>
            <td style="padding-bottom:24px;text-align:center;">
              <span style="font-size:20px;font-weight:700;color:#111827;letter-spacing:-0.5px;">⬛ StepUp</span>
            </td>
          </tr>

          <tr>
            <td style="background:#ffffff;border-radius:16px;border:1px solid #E5E7EB;padding:36px 32px;">

              <p style="margin:0 0 6px;font-size:13px;font-weight:600;color:#9CA3AF;text-transform:uppercase;letter-spacing:0.06em;">Weekly check-in</p>
              <h1 style="margin:0 0 16px;font-size:24px;font-weight:700;color:#111827;line-height:1.3;">
                Hey {{.Name}} 👋
              </h1>

              <p style="margin:0 0 24px;font-size:15px;color:#6B7280;line-height:1.6;">
                {{.StatusLine}}
              </p>

              <hr style="border:none;border-top:1px solid #F3F4F6;margin:0 0 24px;" />

              <table width="100%" cellpadding="0" cellspacing="0" style="margin-bottom:28px;">
                <tr>
                  <td style="background:#F9FAFB;border-radius:10px;padding:14px 18px;">
                    <p style="margin:0;font-size:12px;font-weight:600;color:#9CA3AF;text-transform:uppercase;letter-spacing:0.06em;margin-bottom:4px;">Your track</p>
                    <p style="margin:0;font-size:15px;font-weight:700;color:#111827;">{{.TrackName}}</p>
                  </td>
                  <td width="12"></td>
                  <td style="background:#F9FAFB;border-radius:10px;padding:14px 18px;">
                    <p style="margin:0;font-size:12px;font-weight:600;color:#9CA3AF;text-transform:uppercase;letter-spacing:0.06em;margin-bottom:4px;">Streak</p>
                    <p style="margin:0;font-size:15px;font-weight:700;color:#111827;">🔥 {{.Streak}} day{{if ne .Streak 1}}s{{end}}</p>
                  </td>
                </tr>
              </table>

              <p style="margin:0 0 24px;font-size:14px;color:#6B7280;line-height:1.6;">
                Consistent builders ship consistently. Even 20 minutes today keeps the momentum alive.
              </p>

              <a
                href="{{.AppURL}}/tracks"
                style="display:inline-block;background:#111827;color:#ffffff;font-size:14px;font-weight:600;padding:12px 24px;border-radius:8px;text-decoration:none;"
              >
                Continue on StepUp →
              </a>

            </td>
          </tr>

          <tr>
            <td style="padding-top:20px;text-align:center;">
              <p style="margin:0;font-size:12px;color:#9CA3AF;">
                You're receiving this because you're a StepUp learner.
              </p>
            </td>
          </tr>

        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

type nudgeEmailData struct {
	Name       string
	TrackName  string
	Streak     int
	StatusLine template.HTML
	AppURL     string
}

// BuildEmailHTML renders the weekly nudge card for one learner.
func (s *NudgeService) BuildEmailHTML(user *model.User, now time.Time) (string, error) {
	trackName := user.SelectedTrack
	if track, ok := catalog.Get(user.SelectedTrack); ok {
		trackName = track.Name
	}

	days, hasDays := DaysSince(user.LastActiveDate, now)
	data := nudgeEmailData{
		Name:       user.Name,
		TrackName:  trackName,
		Streak:     user.StreakCount,
		StatusLine: StatusLine(user.StreakCount, trackName, days, hasDays),
		AppURL:     s.AppURL,
	}

	var buf bytes.Buffer
	if err := nudgeTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendAll mails every onboarded learner sequentially. One failed
// recipient never aborts the batch; each outcome lands in the report.
func (s *NudgeService) SendAll(now time.Time) (*NudgeReport, error) {
	users, err := s.Profiles.FindAll()
	if err != nil {
		return nil, err
	}

	report := &NudgeReport{Results: make([]NudgeResult, 0, len(users))}
	for i := range users {
		user := &users[i]
		if user.Email == "" || !user.Onboarded {
			continue
		}

		result := NudgeResult{Email: user.Email, Success: true}
		html, err := s.BuildEmailHTML(user, now)
		if err == nil {
			subject := fmt.Sprintf("Your weekly StepUp nudge, %s 🔥", user.Name)
			err = s.Mailer.Send(user.Name, user.Email, subject, html)
		}
		if err != nil {
			result.Success = false
			result.Error = err.Error()
			monitoring.NudgeEmailCounter.WithLabelValues("failure").Inc()
		} else {
			monitoring.NudgeEmailCounter.WithLabelValues("success").Inc()
		}

		report.Results = append(report.Results, result)
		if result.Success {
			report.Sent++
		}
	}
	report.Total = len(report.Results)

	logger.Log.Info("weekly nudge batch finished",
		zap.Int("total", report.Total),
		zap.Int("sent", report.Sent),
	)
	return report, nil
}
