package repository

//go:generate mockgen -source=user.go -destination=mock/user.go -package=mock
//go:generate mockgen -source=project.go -destination=mock/project.go -package=mock
//go:generate mockgen -source=drawing.go -destination=mock/drawing.go -package=mock
//go:generate mockgen -source=annotation.go -destination=mock/annotation.go -package=mock
//go:generate mockgen -source=workflow.go -destination=mock/workflow.go -package=mock
//go:generate mockgen -source=audit.go -destination=mock/audit.go -package=mock
