// Copyright (C) 2025 Alehson Team
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package transformer_test

import (
	"testing"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/alehson-uz/alehson/utils"
	"github.com/stretchr/testify/assert"
)

func TestBlogToDTO(t *testing.T) {
	blog := models.Blog{
		Title: "Winter campaign",
		Slug:  "winter-campaign",
		Hits:  42,
	}

	dto := transformer.BlogToDTO(blog)
	assert.Equal(t, "winter-campaign", dto.Slug)
	assert.Equal(t, 42, dto.Views)
}

func TestApplyBlogPatchToModel(t *testing.T) {
	baseBlog := func() models.Blog {
		return models.Blog{
			Title:       "Winter campaign",
			Description: "short",
			Content:     "long",
			Slug:        "winter-campaign",
		}
	}

	t.Run("should report no change for an empty patch", func(t *testing.T) {
		blog := baseBlog()
		updated, titleChanged := transformer.ApplyBlogPatchToModel(dtos.BlogPatchRequest{}, &blog)
		assert.False(t, updated)
		assert.False(t, titleChanged)
	})

	t.Run("should flag a title change so the caller can regenerate the slug", func(t *testing.T) {
		blog := baseBlog()
		updated, titleChanged := transformer.ApplyBlogPatchToModel(dtos.BlogPatchRequest{
			Title: utils.Ptr("Spring campaign"),
		}, &blog)
		assert.True(t, updated)
		assert.True(t, titleChanged)
		assert.Equal(t, "Spring campaign", blog.Title)
		// the slug itself is not touched here
		assert.Equal(t, "winter-campaign", blog.Slug)
	})

	t.Run("should not flag the title when only the content changes", func(t *testing.T) {
		blog := baseBlog()
		updated, titleChanged := transformer.ApplyBlogPatchToModel(dtos.BlogPatchRequest{
			Content: utils.Ptr("even longer"),
		}, &blog)
		assert.True(t, updated)
		assert.False(t, titleChanged)
	})

	t.Run("should not flag the title when the patch repeats it", func(t *testing.T) {
		blog := baseBlog()
		updated, titleChanged := transformer.ApplyBlogPatchToModel(dtos.BlogPatchRequest{
			Title: utils.Ptr("Winter campaign"),
		}, &blog)
		assert.False(t, updated)
		assert.False(t, titleChanged)
	})
}
