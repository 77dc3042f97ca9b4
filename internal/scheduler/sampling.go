package scheduler

import "github.com/yida7942-create/gmat-tutor/internal/models"

// neutralWeight is used for tags with no weakness record yet and for
// untagged questions.
const neutralWeight = 1.0

// questionWeight computes the sampling weight for one question: the maximum
// of its tags' weakness weights, adjusted by the difficulty boost.
func questionWeight(q models.Question, weaknesses map[string]models.Weakness) float64 {
	maxTag := neutralWeight
	if len(q.SkillTags) > 0 {
		maxTag = 0
		for _, tag := range q.SkillTags {
			w := neutralWeight
			if rec, ok := weaknesses[tag]; ok {
				w = rec.Weight
			}
			if w > maxTag {
				maxTag = w
			}
		}
	}
	return maxTag * difficultyBoost(maxTag, q.Difficulty)
}

// difficultyBoost biases genuinely weak areas toward easier questions (build
// fundamentals first) and mastered areas toward harder ones, mirroring
// adaptive-difficulty behavior without a response model.
func difficultyBoost(maxTagWeight float64, difficulty int) float64 {
	switch {
	case maxTagWeight > 1.5:
		if difficulty <= 2 {
			return 1.3
		}
		if difficulty >= 4 {
			return 0.7
		}
	case maxTagWeight < 1.0:
		if difficulty <= 2 {
			return 0.7
		}
		if difficulty >= 4 {
			return 1.3
		}
	}
	return 1.0
}

// weightedSample draws up to count questions without replacement, with
// probability proportional to questionWeight. Already-selected ids are
// excluded.
func (s *Scheduler) weightedSample(questions []models.Question, weaknesses map[string]models.Weakness, count int, exclude map[int64]bool) []models.Question {
	if count <= 0 {
		return nil
	}

	type candidate struct {
		q models.Question
		w float64
	}
	var candidates []candidate
	for _, q := range questions {
		if exclude[q.ID] {
			continue
		}
		candidates = append(candidates, candidate{q: q, w: questionWeight(q, weaknesses)})
	}

	var selected []models.Question
	for len(selected) < count && len(candidates) > 0 {
		total := 0.0
		for _, c := range candidates {
			total += c.w
		}

		idx := 0
		if total > 0 {
			r := s.rng.Float64() * total
			for i, c := range candidates {
				r -= c.w
				if r <= 0 {
					idx = i
					break
				}
			}
		} else {
			idx = s.rng.Intn(len(candidates))
		}

		selected = append(selected, candidates[idx].q)
		candidates = append(candidates[:idx], candidates[idx+1:]...)
	}
	return selected
}

// sampleFromTags draws up to count questions carrying any of the given tags,
// uniformly at random.
func (s *Scheduler) sampleFromTags(questions []models.Question, tags []string, count int, exclude map[int64]bool) []models.Question {
	var matching []models.Question
	for _, q := range questions {
		if exclude[q.ID] {
			continue
		}
		for _, tag := range tags {
			if q.HasTag(tag) {
				matching = append(matching, q)
				break
			}
		}
	}
	return s.uniformSample(matching, count)
}

// uniformSample draws up to count questions uniformly without replacement.
func (s *Scheduler) uniformSample(questions []models.Question, count int) []models.Question {
	if count <= 0 || len(questions) == 0 {
		return nil
	}
	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)
	s.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// shuffleWithConstraints orders the selected questions randomly while keeping
// passage groups adjacent and limiting runs of a shared tag.
//
// The repair is a single forward pass: for each window one longer than the
// allowed run that shares a common tag, the first later question without that
// tag is swapped into the offending position. Pathological pools dominated by
// one tag can still violate the limit; no second pass or backtracking runs.
func (s *Scheduler) shuffleWithConstraints(questions []models.Question) []models.Question {
	if len(questions) <= 1 {
		return questions
	}

	// Shuffle at the unit level so passage groups travel together.
	var units [][]models.Question
	grouped := make(map[int64]int) // passage id -> unit index
	for _, q := range questions {
		if q.PassageID != nil {
			if idx, ok := grouped[*q.PassageID]; ok {
				units[idx] = append(units[idx], q)
				continue
			}
			grouped[*q.PassageID] = len(units)
		}
		units = append(units, []models.Question{q})
	}
	s.rng.Shuffle(len(units), func(i, j int) { units[i], units[j] = units[j], units[i] })

	ordered := make([]models.Question, 0, len(questions))
	for _, unit := range units {
		ordered = append(ordered, unit...)
	}

	maxRun := s.cfg.MaxConsecutiveSameTag
	if maxRun <= 0 {
		return ordered
	}

	for i := 0; i+maxRun < len(ordered); i++ {
		common := tagSet(ordered[i])
		for _, q := range ordered[i+1 : i+maxRun+1] {
			common = intersectTags(common, q)
		}
		if len(common) == 0 {
			continue
		}

		// Only stand-alone questions may move; passage members stay adjacent.
		offending := i + maxRun
		if ordered[offending].PassageID != nil {
			continue
		}
		for j := offending + 1; j < len(ordered); j++ {
			if ordered[j].PassageID != nil {
				continue
			}
			if !sharesAnyTag(ordered[j], common) {
				ordered[offending], ordered[j] = ordered[j], ordered[offending]
				break
			}
		}
	}
	return ordered
}

func tagSet(q models.Question) map[string]bool {
	set := make(map[string]bool, len(q.SkillTags))
	for _, t := range q.SkillTags {
		set[t] = true
	}
	return set
}

func intersectTags(set map[string]bool, q models.Question) map[string]bool {
	out := make(map[string]bool)
	for _, t := range q.SkillTags {
		if set[t] {
			out[t] = true
		}
	}
	return out
}

func sharesAnyTag(q models.Question, set map[string]bool) bool {
	for _, t := range q.SkillTags {
		if set[t] {
			return true
		}
	}
	return false
}
