package topic

import "github.com/abhinav-rai/pathcraft/internal/course"

// buildTopicViews overlays the user's materialized topics on the course
// catalog and applies the linear unlock rule: every materialized topic is
// active, plus exactly the one immediately following the last materialized
// topic in catalog order. With nothing materialized, only the first catalog
// topic is active. Catalog order is the authority, never creation time.
func buildTopicViews(catalog []course.TopicSpec, materialized []*Topic) []TopicView {
	bySlug := make(map[string]*Topic, len(materialized))
	for _, t := range materialized {
		bySlug[t.Slug] = t
	}

	lastStarted := -1
	for i, spec := range catalog {
		if _, ok := bySlug[spec.Slug]; ok {
			lastStarted = i
		}
	}
	nextActive := lastStarted + 1

	views := make([]TopicView, 0, len(catalog))
	for i, spec := range catalog {
		view := TopicView{
			Slug:        spec.Slug,
			Title:       spec.Title,
			Description: spec.Description,
			Tags:        spec.Tags,
		}

		if t, ok := bySlug[spec.Slug]; ok {
			view.IsActive = true
			view.IsStarted = true
			view.Title = t.Title
			view.Description = t.Description
			view.HasNotes = len(t.Notes) > 0
			view.HasQuiz = len(t.Questions) > 0
			view.Progress = t.Progress
			view.IsCompleted = t.IsCompleted
		} else if i == nextActive {
			view.IsActive = true
		}

		views = append(views, view)
	}
	return views
}
