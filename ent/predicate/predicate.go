// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LearningPlan is the predicate function for learningplan builders.
type LearningPlan func(*sql.Selector)

// LearningSession is the predicate function for learningsession builders.
type LearningSession func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// QuestionResponse is the predicate function for questionresponse builders.
type QuestionResponse func(*sql.Selector)
