//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// DateKeyword is a special value accepted in place of a channel date.
// ENUM(omit,now)
type DateKeyword string
