package models

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
)

// Category is the kind of document an editor was opened for
type Category string

const (
	CategoryNotes Category = "Notes"
	CategoryTodo  Category = "To-do"
)

func (c Category) String() string {
	return string(c)
}

// CategoryForPath picks Notes for .txt files and To-do for anything else
func CategoryForPath(path string) Category {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return CategoryNotes
	}
	return CategoryTodo
}

// Document is a text buffer bound to zero or one file URI
type Document struct {
	Category Category
	Content  string
	uri      fyne.URI
}

func NewDocument(category Category) *Document {
	return &Document{Category: category}
}

// Bind associates the document with uri
func (d *Document) Bind(uri fyne.URI) {
	d.uri = uri
}

// Reset unbinds the document and empties its buffer
func (d *Document) Reset() {
	d.uri = nil
	d.Content = ""
}

func (d *Document) URI() fyne.URI {
	return d.uri
}

// Path is the local path of the bound file, or "" when unbound
func (d *Document) Path() string {
	if d.uri == nil {
		return ""
	}
	return d.uri.Path()
}

func (d *Document) IsBound() bool {
	return d.uri != nil
}

// Name is the base name of the bound file, or Untitled
func (d *Document) Name() string {
	if !d.IsBound() {
		return "Untitled"
	}
	return d.uri.Name()
}

// Title renders the editor window title
func (d *Document) Title() string {
	return fmt.Sprintf("%s - %s", d.Category, d.Name())
}
