// Package answer parses structured support answers into a tree of sections.
//
// Answers follow a loose markdown convention: numbered bold headings open a
// section, "- **Title**:" lines open a titled bullet group, and plain "-"
// lines add points to the most recent group. Parsing never fails; lines that
// cannot be attached are dropped and stray leading text is collected into a
// synthetic "Information" section.
package answer
