package rendering

import (
	"strings"
	"testing"
	"time"

	"github.com/jonathan/weekly-stubs/internal/profiles"
	"github.com/jonathan/weekly-stubs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func firstWeek() types.Week {
	return types.Week{
		Start:       time.Date(2025, time.November, 27, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2025, time.December, 3, 0, 0, 0, 0, time.UTC),
		Year:        2025,
		Month:       time.November,
		WeekInMonth: 1,
	}
}

func profile(t *testing.T, lang string) types.LanguageProfile {
	t.Helper()
	for _, p := range defaultProfiles(t) {
		if p.Lang == lang {
			return p
		}
	}
	require.FailNow(t, "profile not registered", lang)
	return types.LanguageProfile{}
}

func defaultProfiles(t *testing.T) []types.LanguageProfile {
	t.Helper()
	all, err := profiles.Default()
	require.NoError(t, err)
	return all
}

func TestRender_English(t *testing.T) {
	doc, err := Render(firstWeek(), profile(t, "en"))
	require.NoError(t, err)

	assert.Equal(t, "2025-11-w1", doc.Slug)
	assert.Equal(t, "2025-11-w1.en.md", doc.Filename())
	assert.Equal(t, "2025-11 Week 1", doc.Title)
	assert.Equal(t, "Weekly report (2025-11-27 — 2025-12-03).", doc.Description)

	expected := "---\n" +
		"title: \"2025-11 Week 1\"\n" +
		"description: \"Weekly report (2025-11-27 — 2025-12-03).\"\n" +
		"date: 2025-11-27\n" +
		"slug: 2025-11-w1\n" +
		"year: 2025\n" +
		"month: 11\n" +
		"weekInMonth: 1\n" +
		"start: 2025-11-27\n" +
		"end: 2025-12-03\n" +
		"---\n\n" +
		"## Highlights\n- \n\n## Progress\n- \n\n## Next week\n- \n"
	assert.Equal(t, expected, doc.Content)
}

func TestRender_Chinese(t *testing.T) {
	doc, err := Render(firstWeek(), profile(t, "zh"))
	require.NoError(t, err)

	assert.Equal(t, "2025-11-w1.zh.md", doc.Filename())
	assert.Equal(t, "2025年11月 第1周 周报", doc.Title)
	assert.Equal(t, "周报（2025-11-27 ～ 2025-12-03）。", doc.Description)
	assert.Contains(t, doc.Content, "title: \"2025年11月 第1周 周报\"\n")
	assert.True(t, strings.HasSuffix(doc.Content, "---\n\n## 本周要点\n- \n\n## 进展\n- \n\n## 下周计划\n- \n"))
}

func TestRender_SlugSharedAcrossLanguages(t *testing.T) {
	week := types.Week{
		Start:       time.Date(2026, time.March, 19, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC),
		Year:        2026,
		Month:       time.March,
		WeekInMonth: 3,
	}

	var slugs []string
	for _, p := range defaultProfiles(t) {
		doc, err := Render(week, p)
		require.NoError(t, err)
		slugs = append(slugs, doc.Slug)
		assert.Contains(t, doc.Content, "month: 3\n")
	}
	assert.Equal(t, []string{"2026-03-w3", "2026-03-w3"}, slugs)
}

func TestRender_IsDeterministic(t *testing.T) {
	p := profile(t, "en")
	a, err := Render(firstWeek(), p)
	require.NoError(t, err)
	b, err := Render(firstWeek(), p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRender_FrontMatterIsValidYAML(t *testing.T) {
	for _, p := range defaultProfiles(t) {
		t.Run(p.Lang, func(t *testing.T) {
			doc, err := Render(firstWeek(), p)
			require.NoError(t, err)

			parts := strings.SplitN(doc.Content, "---\n", 3)
			require.Len(t, parts, 3)

			var fm map[string]any
			require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
			assert.Equal(t, doc.Title, fm["title"])
			assert.Equal(t, doc.Description, fm["description"])
			assert.Equal(t, "2025-11-w1", fm["slug"])
			assert.Equal(t, 2025, fm["year"])
			assert.Equal(t, 11, fm["month"])
			assert.Equal(t, 1, fm["weekInMonth"])
		})
	}
}

func TestRender_QuotesSpecialCharacters(t *testing.T) {
	p := types.LanguageProfile{
		Lang:                "en",
		TitleTemplate:       `Week "{{.Week}}": review`,
		DescriptionTemplate: "{{.Start}}",
		Body:                "",
	}

	doc, err := Render(firstWeek(), p)
	require.NoError(t, err)
	assert.Contains(t, doc.Content, `title: "Week \"1\": review"`)
}

func TestRender_TemplateErrors(t *testing.T) {
	tests := []struct {
		name      string
		p         types.LanguageProfile
		wantName  string
		wantStage string
	}{
		{
			name:      "unparseable title",
			p:         types.LanguageProfile{Lang: "en", TitleTemplate: "{{.Year", DescriptionTemplate: "d", Body: "b"},
			wantName:  "en/title",
			wantStage: "parse",
		},
		{
			name:      "unknown description field",
			p:         types.LanguageProfile{Lang: "zh", TitleTemplate: "t", DescriptionTemplate: "{{.Quarter}}", Body: "b"},
			wantName:  "zh/description",
			wantStage: "execute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(firstWeek(), tt.p)
			require.Error(t, err)
			var templateErr *TemplateError
			require.ErrorAs(t, err, &templateErr)
			assert.Equal(t, tt.wantName, templateErr.Template)
			assert.Equal(t, tt.wantStage, templateErr.Stage)
			assert.Contains(t, err.Error(), "template "+tt.wantName+": "+tt.wantStage+" failed")
		})
	}
}

func TestTemplateError_Unwrap(t *testing.T) {
	err := &TemplateError{Template: "front-matter", Stage: "execute", Cause: assert.AnError}
	assert.ErrorIs(t, err, assert.AnError)
}
