package fleet

import "testing"

func TestToolFilters_Allows(t *testing.T) {
	tests := []struct {
		name    string
		filters *ToolFilters
		tool    string
		want    bool
	}{
		{name: "nil filters admit everything", filters: nil, tool: "get_weather", want: true},
		{name: "zero value admits everything", filters: &ToolFilters{}, tool: "get_weather", want: true},
		{
			name:    "allow list admits member",
			filters: &ToolFilters{Allowed: []string{"get_weather"}},
			tool:    "get_weather",
			want:    true,
		},
		{
			name:    "allow list excludes non-member",
			filters: &ToolFilters{Allowed: []string{"get_weather"}},
			tool:    "get_forecast",
			want:    false,
		},
		{
			name:    "deny list excludes member",
			filters: &ToolFilters{Rejected: []string{"get_forecast"}},
			tool:    "get_forecast",
			want:    false,
		},
		{
			name:    "deny wins after allow",
			filters: &ToolFilters{Allowed: []string{"get_weather"}, Rejected: []string{"get_weather"}},
			tool:    "get_weather",
			want:    false,
		},
		{
			name:    "empty allow list admits nothing",
			filters: &ToolFilters{Allowed: []string{}},
			tool:    "get_weather",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Allows(tt.tool); got != tt.want {
				t.Errorf("Allows(%q) = %v, want %v", tt.tool, got, tt.want)
			}
		})
	}
}
