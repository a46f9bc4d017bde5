// Package service provides the business logic behind the Porthole dashboard.
package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"nfcunha/porthole/core/models"
)

// ContainerLister returns the raw JSON body of a container list request.
// *docker.Client satisfies it.
type ContainerLister interface {
	ContainerListJSON(ctx context.Context) (io.ReadCloser, error)
}

// FetchError is the single failure kind of a container list fetch. Transport
// errors, non-success responses and unusable records all end up here.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DirectoryService reads the container list from the runtime API.
type DirectoryService struct {
	lister ContainerLister
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(lister ContainerLister) *DirectoryService {
	return &DirectoryService{lister: lister}
}

// FetchContainers issues one list request and returns the records in the
// order the runtime returned them. No query options are sent, so the runtime
// reports running containers only. Any failure is returned as *FetchError.
func (s *DirectoryService) FetchContainers(ctx context.Context) ([]models.ContainerRecord, error) {
	body, err := s.lister.ContainerListJSON(ctx)
	if err != nil {
		log.Printf("Failed to list containers: %v", err)
		return nil, &FetchError{Message: "failed to list containers", Err: err}
	}
	defer body.Close()

	records, err := models.DecodeContainers(body)
	if err != nil {
		log.Printf("Failed to decode container list: %v", err)
		return nil, &FetchError{Message: "failed to list containers", Err: err}
	}

	for _, c := range records {
		if len(c.Names) == 0 {
			log.Printf("Container %s has no names", c.ID)
			return nil, &FetchError{Message: fmt.Sprintf("container %s has no names", c.ID)}
		}
	}

	if records == nil {
		records = []models.ContainerRecord{}
	}
	return records, nil
}
