package service

import (
	"hotelops/internal/domains/housekeeping/model"
	"slices"
	"time"
)

type rankedTask struct {
	task  model.Task
	score int
}

// rank scores tasks at now and orders them by score, oldest first on ties.
func rank(tasks []model.Task, arrivals map[string]bool, now time.Time) []rankedTask {
	ranked := make([]rankedTask, len(tasks))

	for i, task := range tasks {
		ranked[i] = rankedTask{
			task: task,
			score: model.Score(model.ScoreInput{
				TaskType:   task.TaskType,
				HasArrival: arrivals[task.RoomID],
				IsVIP:      task.RoomIsVIP,
				Waiting:    now.Sub(task.CreatedAt),
			}),
		}
	}

	slices.SortStableFunc(ranked, func(a, b rankedTask) int {
		if a.score != b.score {
			return b.score - a.score
		}

		return a.task.CreatedAt.Compare(b.task.CreatedAt)
	})

	return ranked
}

func roomsOf(tasks []model.Task) []string {
	rooms := make([]string, 0, len(tasks))

	for _, task := range tasks {
		if !slices.Contains(rooms, task.RoomID) {
			rooms = append(rooms, task.RoomID)
		}
	}

	return rooms
}
