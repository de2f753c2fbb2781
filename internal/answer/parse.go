package answer

import (
	"regexp"
	"strings"
)

var (
	sectionHeaderRegex = regexp.MustCompile(`^\d+\.\s+\*\*([^*]+)\*\*`)
	titledBulletRegex  = regexp.MustCompile(`^\s*-\s+\*\*([^*]+)\*\*:`)
	nestedBulletRegex  = regexp.MustCompile(`^\s+-\s+\*\*([^*]+)\*\*:`)
	bulletMarkerRegex  = regexp.MustCompile(`^\s*-\s+`)
)

// Parse converts a structured answer into its sections. It is defined for
// every input and keeps no state between calls.
func Parse(answer string) []Section {
	if strings.TrimSpace(answer) == "" {
		return nil
	}

	p := &builder{}
	for line := range strings.SplitSeq(answer, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.consume(line)
	}

	return p.finish()
}

// builder holds the accumulators for a single Parse call.
type builder struct {
	sections []Section
	section  *Section
	bullet   *Bullet
	nested   *Nested
}

func (b *builder) consume(line string) {
	trimmed := strings.TrimSpace(line)

	// Rule order matters: a titled bullet pattern also accepts indented
	// lines, so the nested pattern only sees what it leaves behind.
	if m := sectionHeaderRegex.FindStringSubmatch(line); m != nil {
		b.openSection(m[1])
		return
	}

	if m := titledBulletRegex.FindStringSubmatch(line); m != nil {
		if b.section == nil {
			return
		}
		b.bullet = &Bullet{Title: strings.TrimSpace(m[1])}
		b.section.Content = append(b.section.Content, b.bullet)
		b.nested = nil
		return
	}

	if m := nestedBulletRegex.FindStringSubmatch(line); m != nil {
		if b.section == nil {
			return
		}
		b.nested = &Nested{Title: strings.TrimSpace(m[1])}
		b.section.Content = append(b.section.Content, b.nested)
		return
	}

	if strings.HasPrefix(trimmed, "-") {
		b.addPoint(strings.TrimSpace(bulletMarkerRegex.ReplaceAllString(line, "")))
		return
	}

	if b.section == nil {
		b.section = &Section{Title: DefaultSectionTitle}
	}
	b.section.Content = append(b.section.Content, &Text{Text: trimmed})
}

func (b *builder) openSection(rawTitle string) {
	b.closeSection()

	title := strings.TrimSpace(rawTitle)
	if title == "" {
		title = DefaultSectionTitle
	}

	b.section = &Section{Title: title}
	b.bullet = nil
	b.nested = nil
}

func (b *builder) addPoint(text string) {
	switch {
	case b.nested != nil:
		b.nested.Points = append(b.nested.Points, text)
	case b.bullet != nil:
		b.bullet.Points = append(b.bullet.Points, text)
	case b.section != nil:
		b.section.Content = append(b.section.Content, &Text{Text: text})
	}
}

func (b *builder) closeSection() {
	if b.section != nil {
		b.sections = append(b.sections, *b.section)
		b.section = nil
	}
}

func (b *builder) finish() []Section {
	b.closeSection()
	return b.sections
}
