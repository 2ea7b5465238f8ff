package progression

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ideaforge/forge/internal/domain"
)

// Unlock notifications are best-effort: suppression or a storage failure
// never affects the unlock itself.

// notifyUnlock writes an unlock announcement if policy allows it.
// Caller holds s.mu.
func (s *Service) notifyUnlock(scope domain.Scope, criterionID string, now time.Time) {
	kind := domain.NotifyAchievement
	noun := "Achievement"
	if scope == domain.ScopeBadge {
		kind = domain.NotifyBadge
		noun = "Badge"
	}

	allowed, err := s.allowNotification(now)
	if err != nil {
		log.Printf("[progression] notification check failed: %v", err)
		return
	}
	if !allowed {
		return
	}

	_, err = s.db.InsertNotification(domain.Notification{
		Type:      kind,
		Title:     noun + " unlocked!",
		Body:      fmt.Sprintf("%s — %s", s.CriterionName(criterionID), criterionID),
		CreatedAt: now,
	})
	if err != nil {
		log.Printf("[progression] insert notification: %v", err)
	}
}

// allowNotification enforces the daily cap and quiet hours.
func (s *Service) allowNotification(now time.Time) (bool, error) {
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	count, err := s.db.NotificationCountSince(startOfDay)
	if err != nil {
		return false, fmt.Errorf("count today: %w", err)
	}
	if count >= s.policy.MaxPerDay {
		return false, nil // Daily limit reached
	}
	if isQuietHour(s.policy, now) {
		return false, nil
	}
	return true, nil
}

// PendingNotifications returns unshown notifications.
func (s *Service) PendingNotifications(limit int) ([]domain.Notification, error) {
	return s.db.ListPendingNotifications(limit)
}

// MarkNotificationShown marks a notification as shown.
func (s *Service) MarkNotificationShown(id int64) error {
	return s.db.MarkNotificationShown(id)
}

// isQuietHour returns true if the given time falls within quiet hours.
func isQuietHour(policy domain.NotificationPolicy, t time.Time) bool {
	startHour, startMin := parseHHMM(policy.QuietStart)
	endHour, endMin := parseHHMM(policy.QuietEnd)

	minutes := t.Hour()*60 + t.Minute()
	start := startHour*60 + startMin
	end := endHour*60 + endMin

	if start > end {
		// Wraps midnight: e.g., 22:00 – 08:00
		return minutes >= start || minutes < end
	}
	return minutes >= start && minutes < end
}

// parseHHMM parses "HH:MM" into hour and minute.
func parseHHMM(s string) (int, int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m
}
