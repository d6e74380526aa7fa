package service

import (
	"context"

	"post-query-service/internal/domain"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// GetArchives groups every published post by publish year and English
// month name. Years, months and posts all keep the publish-time
// descending order of the underlying query.
func (s *PostService) GetArchives(ctx context.Context) ([]YearArchive, error) {
	posts, err := s.posts.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	domain.RedactAll(posts)

	var archives []YearArchive
	yearIndex := make(map[int]int)

	for _, post := range posts {
		if post.PublishTime == nil {
			continue
		}
		year := post.PublishTime.Year()
		month := monthNames[int(post.PublishTime.Month())-1]

		yi, ok := yearIndex[year]
		if !ok {
			yi = len(archives)
			yearIndex[year] = yi
			archives = append(archives, YearArchive{Year: year})
		}

		months := archives[yi].Months
		mi := -1
		for i := range months {
			if months[i].Month == month {
				mi = i
				break
			}
		}
		if mi == -1 {
			archives[yi].Months = append(months, MonthArchive{Month: month})
			mi = len(archives[yi].Months) - 1
		}
		archives[yi].Months[mi].Posts = append(archives[yi].Months[mi].Posts, post)
	}

	return archives, nil
}
