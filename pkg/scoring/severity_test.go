package scoring

import "testing"

func TestSeverityValue(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"None", 1},
		{"Mild", 2},
		{"Moderate", 3},
		{"Severe", 4},
		{"Very Severe", 5},
		{"Very Satisfied", 1},
		{"Very Dissatisfied", 5},
		{"Not Noticeable", 1},
		{"Very Noticeable", 5},
		{"Never", 1},
		{"Sometimes", 3},
		{"Always", 5},
		{"Low", 1},
		{"High", 4},
		{"Very High", 5},
		{"", Unanswered},
		{"unanswered", Unanswered},
		{"not a label", Unanswered},
		{"none", Unanswered}, // labels are case sensitive
	}

	for _, test := range tests {
		if got := SeverityValue(test.label); got != test.want {
			t.Errorf("SeverityValue(%q) = %d, want %d", test.label, got, test.want)
		}
	}
}
