package services

import (
	"testing"

	"github.com/joaquincgp/FitFlow/models"
)

func TestEstimateWeeksToGoal(t *testing.T) {
	p := calcProfile()
	p.Goal = models.GoalLose
	p.WeightCurrentKg = 85
	p.WeightGoalKg = 80
	if got := EstimateWeeksToGoal(p); got != 10 {
		t.Errorf("lose 5 kg: %v weeks, want 10", got)
	}

	p.Goal = models.GoalGain
	p.WeightCurrentKg = 80
	p.WeightGoalKg = 83
	if got := EstimateWeeksToGoal(p); got != 10 {
		t.Errorf("gain 3 kg: %v weeks, want 10", got)
	}

	p.Goal = models.GoalMaintain
	if got := EstimateWeeksToGoal(p); got != 0 {
		t.Errorf("maintain: %v weeks, want 0", got)
	}
}

func TestTimelineCategory(t *testing.T) {
	cases := []struct {
		weeks float64
		want  string
	}{
		{4, "short_term"},
		{12, "short_term"},
		{20, "medium_term"},
		{26, "medium_term"},
		{40, "long_term"},
	}
	for _, tc := range cases {
		if got := timelineCategory(tc.weeks); got != tc.want {
			t.Errorf("timelineCategory(%v) = %s, want %s", tc.weeks, got, tc.want)
		}
	}
}

func TestRecommendedExerciseCalories(t *testing.T) {
	if got := RecommendedExerciseCalories(models.GoalLose); got != 200 {
		t.Errorf("lose = %v, want 200", got)
	}
	if got := RecommendedExerciseCalories(models.GoalGain); got != 150 {
		t.Errorf("gain = %v, want 150", got)
	}
	if got := RecommendedExerciseCalories(models.GoalMaintain); got != 250 {
		t.Errorf("maintain = %v, want 250", got)
	}
}

func TestAnalyzeComposesReport(t *testing.T) {
	svc := NewNutritionAnalysisService(StandardCalculator{})

	report, err := svc.Analyze(calcProfile(), calcToday)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// 80 kg at 180 cm: BMI 24.7, normal
	if !almostEqual(report.BMI.Value, 24.7) {
		t.Errorf("BMI = %v, want 24.7", report.BMI.Value)
	}
	if report.BMI.Category != "Normal weight" {
		t.Errorf("BMI category = %q", report.BMI.Category)
	}
	if report.Goal.WeeksEstimated != 0 {
		t.Errorf("maintain goal WeeksEstimated = %v, want 0", report.Goal.WeeksEstimated)
	}
	if !report.Goal.Feasible {
		t.Error("maintain goal reported infeasible")
	}
	if len(report.Recommendations) == 0 {
		t.Error("no recommendations produced")
	}
	if report.DailyRequirements.RCDE == 0 {
		t.Error("daily requirements missing")
	}
}
