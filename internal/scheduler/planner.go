package scheduler

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
)

// minutesPerQuestion is the fixed per-question time estimate.
const minutesPerQuestion = 2

// poolLimit caps how many candidates a filtered lookup pulls from the store.
const poolLimit = 500

// GenerateDailyPlan builds an ordered question sequence for one session.
//
// Selection is weighted by the current weakness records: questions from
// weak tags are favored, a keep-alive quota revisits mastered tags, and
// reading-comprehension questions sharing a passage are selected and kept
// together as an atomic group. An empty candidate pool yields a valid
// empty plan, not an error.
func (s *Scheduler) GenerateDailyPlan(ctx context.Context, count int, subcategory, skillTag string) (*models.DailyPlan, error) {
	log := logger.FromContext(ctx).WithPrefix("scheduler")

	target := count
	if target <= 0 {
		target = s.cfg.DefaultQuestionCount
	}
	log.Debug("generating daily plan: target=%d, subcategory=%q, skill_tag=%q", target, subcategory, skillTag)

	pool, err := s.questions.List(ctx, models.QuestionFilter{
		Subcategory: subcategory,
		SkillTag:    skillTag,
		Limit:       poolLimit,
	})
	if err != nil {
		return nil, err
	}

	plan := &models.DailyPlan{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
	}
	if len(pool) == 0 {
		log.Debug("empty candidate pool, returning empty plan")
		return plan, nil
	}

	weaknessList, err := s.weaknesses.All(ctx)
	if err != nil {
		return nil, err
	}
	weaknesses := make(map[string]models.Weakness, len(weaknessList))
	for _, w := range weaknessList {
		weaknesses[w.Tag] = w
	}

	attempted, err := s.studyLogs.AttemptedQuestionIDs(ctx)
	if err != nil {
		return nil, err
	}

	singles, groups := partitionByPassage(pool)
	unseen, seen := partitionBySeen(singles, attempted)

	keepAliveCount, masteredTags := s.keepAliveAllocation(target, weaknesses, unseen)
	weaknessCount := target - keepAliveCount

	selected := make([]models.Question, 0, target)
	selectedIDs := make(map[int64]bool, target)

	// Weak-area selection: weighted sample without replacement, unseen first.
	picked := s.weightedSample(unseen, weaknesses, weaknessCount, selectedIDs)
	selected = appendSelected(selected, selectedIDs, picked)
	if len(selected) < weaknessCount {
		picked = s.weightedSample(seen, weaknesses, weaknessCount-len(selected), selectedIDs)
		selected = appendSelected(selected, selectedIDs, picked)
	}

	// Keep-alive: revisit mastered tags so they do not decay unnoticed.
	if keepAliveCount > 0 && len(masteredTags) > 0 {
		picked = s.sampleFromTags(unseen, masteredTags, keepAliveCount, selectedIDs)
		selected = appendSelected(selected, selectedIDs, picked)
		if remaining := keepAliveCount - len(picked); remaining > 0 {
			picked = s.sampleFromTags(seen, masteredTags, remaining, selectedIDs)
			selected = appendSelected(selected, selectedIDs, picked)
		}
	}

	// Passage groups are atomic: a group either enters the plan whole or not
	// at all, and completeness beats hitting the exact target count.
	if len(selected) < target && len(groups) > 0 {
		for _, group := range s.orderGroups(groups, attempted) {
			if len(selected) >= target {
				break
			}
			selected = appendSelected(selected, selectedIDs, group)
		}
	}

	// Fill any remaining slots with whatever individual questions are left.
	if remaining := target - len(selected); remaining > 0 {
		leftovers := make([]models.Question, 0, len(singles))
		for _, q := range singles {
			if !selectedIDs[q.ID] {
				leftovers = append(leftovers, q)
			}
		}
		picked = s.uniformSample(leftovers, remaining)
		selected = appendSelected(selected, selectedIDs, picked)
	}

	plan.Questions = s.shuffleWithConstraints(selected)
	plan.FocusTags = topWeaknessTags(weaknessList, 3)
	plan.EstimatedTimeMinutes = len(plan.Questions) * minutesPerQuestion

	log.Debug("plan generated: questions=%d, focus_tags=%v, estimated=%dm", len(plan.Questions), plan.FocusTags, plan.EstimatedTimeMinutes)
	return plan, nil
}

// keepAliveAllocation computes how many slots go to mastered tags and which
// tags qualify. A tag is mastered once its weight drops below 1.0 over at
// least 3 attempts. The quota gets a floor of one slot whenever a mastered
// tag still has unseen questions available.
func (s *Scheduler) keepAliveAllocation(target int, weaknesses map[string]models.Weakness, unseen []models.Question) (int, []string) {
	var masteredTags []string
	for tag, w := range weaknesses {
		if w.Weight < 1.0 && w.TotalAttempts >= 3 {
			masteredTags = append(masteredTags, tag)
		}
	}
	sort.Strings(masteredTags)

	keepAlive := int(float64(target) * s.cfg.KeepAliveQuota)
	if keepAlive < 1 && hasQuestionWithAnyTag(unseen, masteredTags) {
		keepAlive = 1
	}
	if keepAlive > target {
		keepAlive = target
	}
	if len(masteredTags) == 0 {
		keepAlive = 0
	}
	return keepAlive, masteredTags
}

// orderGroups returns the passage groups in selection order: groups that
// still contain an unseen question first, shuffled within each class.
func (s *Scheduler) orderGroups(groups map[int64][]models.Question, attempted map[int64]bool) [][]models.Question {
	var withUnseen, allSeen [][]models.Question
	for _, group := range groups {
		hasUnseen := false
		for _, q := range group {
			if !attempted[q.ID] {
				hasUnseen = true
				break
			}
		}
		if hasUnseen {
			withUnseen = append(withUnseen, group)
		} else {
			allSeen = append(allSeen, group)
		}
	}
	// Map iteration order is random but not seeded; sort by passage id first
	// so the injected rng fully controls the order.
	byPassage := func(gs [][]models.Question) {
		sort.Slice(gs, func(i, j int) bool { return *gs[i][0].PassageID < *gs[j][0].PassageID })
	}
	byPassage(withUnseen)
	byPassage(allSeen)
	s.rng.Shuffle(len(withUnseen), func(i, j int) { withUnseen[i], withUnseen[j] = withUnseen[j], withUnseen[i] })
	s.rng.Shuffle(len(allSeen), func(i, j int) { allSeen[i], allSeen[j] = allSeen[j], allSeen[i] })
	return append(withUnseen, allSeen...)
}

func partitionByPassage(pool []models.Question) ([]models.Question, map[int64][]models.Question) {
	var singles []models.Question
	groups := make(map[int64][]models.Question)
	for _, q := range pool {
		if q.PassageID != nil {
			groups[*q.PassageID] = append(groups[*q.PassageID], q)
		} else {
			singles = append(singles, q)
		}
	}
	return singles, groups
}

func partitionBySeen(questions []models.Question, attempted map[int64]bool) (unseen, seen []models.Question) {
	for _, q := range questions {
		if attempted[q.ID] {
			seen = append(seen, q)
		} else {
			unseen = append(unseen, q)
		}
	}
	return unseen, seen
}

func appendSelected(selected []models.Question, selectedIDs map[int64]bool, picked []models.Question) []models.Question {
	for _, q := range picked {
		if selectedIDs[q.ID] {
			continue
		}
		selectedIDs[q.ID] = true
		selected = append(selected, q)
	}
	return selected
}

func hasQuestionWithAnyTag(questions []models.Question, tags []string) bool {
	for _, q := range questions {
		for _, tag := range tags {
			if q.HasTag(tag) {
				return true
			}
		}
	}
	return false
}

func topWeaknessTags(weaknesses []models.Weakness, n int) []string {
	sorted := make([]models.Weakness, len(weaknesses))
	copy(sorted, weaknesses)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })

	var tags []string
	for i := 0; i < n && i < len(sorted); i++ {
		tags = append(tags, sorted[i].Tag)
	}
	return tags
}
