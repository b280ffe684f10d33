package rendering

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/jonathan/weekly-stubs/internal/types"
	"github.com/jonathan/weekly-stubs/internal/weeks"
)

// Document is a rendered weekly stub for one language.
type Document struct {
	Lang        string
	Slug        string
	Title       string
	Description string
	Content     string
}

// Filename returns the stub file name, e.g. "2025-11-w1.en.md".
func (d *Document) Filename() string {
	return fmt.Sprintf("%s.%s.md", d.Slug, d.Lang)
}

// weekFields is the data exposed to title and description templates.
type weekFields struct {
	Year  int
	Month string // zero-padded
	Week  int
	Start string
	End   string
}

// frontMatterTemplate lays out the stub header. Title and description are
// quoted; every other value is a plain scalar.
var frontMatterTemplate = template.Must(template.New("front-matter").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`---
title: {{quote .Title}}
description: {{quote .Description}}
date: {{.Start}}
slug: {{.Slug}}
year: {{.Year}}
month: {{.Month}}
weekInMonth: {{.WeekInMonth}}
start: {{.Start}}
end: {{.End}}
---

`))

type frontMatter struct {
	Title       string
	Description string
	Slug        string
	Year        int
	Month       int
	WeekInMonth int
	Start       string
	End         string
}

// Render produces the stub document for week in the given language profile.
// The result depends only on its arguments.
func Render(week types.Week, profile types.LanguageProfile) (*Document, error) {
	fields := weekFields{
		Year:  week.Year,
		Month: fmt.Sprintf("%02d", int(week.Month)),
		Week:  week.WeekInMonth,
		Start: weeks.FormatDate(week.Start),
		End:   weeks.FormatDate(week.End),
	}

	title, err := execute(profile.Lang+"/title", profile.TitleTemplate, fields)
	if err != nil {
		return nil, err
	}

	description, err := execute(profile.Lang+"/description", profile.DescriptionTemplate, fields)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Lang:        profile.Lang,
		Slug:        week.Slug(),
		Title:       title,
		Description: description,
	}

	var content strings.Builder
	err = frontMatterTemplate.Execute(&content, frontMatter{
		Title:       title,
		Description: description,
		Slug:        doc.Slug,
		Year:        week.Year,
		Month:       int(week.Month),
		WeekInMonth: week.WeekInMonth,
		Start:       fields.Start,
		End:         fields.End,
	})
	if err != nil {
		return nil, &TemplateError{Template: frontMatterTemplate.Name(), Stage: "execute", Cause: err}
	}
	content.WriteString(profile.Body)
	doc.Content = content.String()

	return doc, nil
}

// execute parses and runs a single profile template.
func execute(name, text string, data weekFields) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", &TemplateError{Template: name, Stage: "parse", Cause: err}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Template: name, Stage: "execute", Cause: err}
	}
	return out.String(), nil
}
