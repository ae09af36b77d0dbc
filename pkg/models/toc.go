/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

// TableOfContents is the contract the document layer implements for chapter
// navigation. All methods are pure lookups over a precomputed, monotonically
// ordered tick sequence; implementations live outside this module.
type TableOfContents interface {
	// MaxDepth returns the deepest chapter level in the document.
	MaxDepth() int

	// TitleForPage returns the chapter title covering the page, or ok=false
	// when the page precedes the first chapter.
	TitleForPage(page int) (title string, ok bool)

	// TicksAtLevel returns the ordered page numbers of chapter starts at the
	// given level. A negative level normalizes to the deepest level.
	TicksAtLevel(level int) []int

	// NextChapterPage and PreviousChapterPage return the adjacent chapter
	// start relative to the page, or ok=false at the document edges.
	NextChapterPage(page, level int) (next int, ok bool)
	PreviousChapterPage(page, level int) (prev int, ok bool)

	// PagesLeftInChapter returns how many pages remain before the next
	// chapter start, or ok=false when the page is past the last tick.
	PagesLeftInChapter(page, level int) (left int, ok bool)
}
