package features

import (
	"strings"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// The four fixed phonological-awareness sub-tasks.
var phonologicalTaskTypes = []string{"rhyming", "segmentation", "blending", "manipulation"}

// ExtractPhonological scores a phonological-awareness test. Free-text
// responses carry no ground truth, so by default the score is an
// attempted-completion percentage. When the integrator supplies a
// correctness flag on every task, the score becomes graded accuracy.
func ExtractPhonological(p *models.PhonologicalPayload) models.FeatureVector {
	if p == nil {
		p = &models.PhonologicalPayload{}
	}

	total := len(p.Tasks)
	attempted := 0
	flagged := 0
	correct := 0

	perTypeCorrect := make(map[string]int)
	perTypeTotal := make(map[string]int)

	for _, task := range p.Tasks {
		taskType := strings.ToLower(strings.TrimSpace(task.TaskType))
		perTypeTotal[taskType]++

		if strings.TrimSpace(task.Response) != "" {
			attempted++
		}
		if task.Correct != nil {
			flagged++
			if *task.Correct {
				correct++
				perTypeCorrect[taskType]++
			}
		}
	}

	graded := total > 0 && flagged == total
	completionRate := safeDiv(float64(attempted), float64(total))

	var score float64
	var errors int
	if graded {
		score = safeDiv(float64(correct), float64(total)) * 100
		errors = total - correct
	} else {
		score = completionRate * 100
		errors = total - attempted
	}

	fv := models.FeatureVector{
		"tasks_total":         float64(total),
		"tasks_attempted":     float64(attempted),
		"completion_rate":     round2(completionRate),
		"graded":              boolFeature(graded),
		models.FeatureScore:  round2(score),
		models.FeatureErrors: float64(errors),
	}

	// Per-task-type accuracy is only meaningful in graded mode.
	if graded {
		for _, taskType := range phonologicalTaskTypes {
			if n := perTypeTotal[taskType]; n > 0 {
				fv[taskType+"_accuracy"] = round2(float64(perTypeCorrect[taskType]) / float64(n) * 100)
			}
		}
	}

	return fv
}
