package service

import (
	"context"
	"time"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/identity"
	"campusfeed/internal/models"
	"campusfeed/internal/repository"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type CreateEventRequest struct {
	Title        string     `json:"title" validate:"max=200"`
	Description  *string    `json:"description" validate:"omitempty,max=5000"`
	EventType    *string    `json:"eventType" validate:"omitempty,max=50"`
	DepartmentID *int64     `json:"departmentId" validate:"omitempty,gt=0"`
	EventDate    *time.Time `json:"eventDate"`
	Location     *string    `json:"location" validate:"omitempty,max=200"`
	IsPublic     *bool      `json:"isPublic"`
}

type ShareResourceRequest struct {
	Title        string  `json:"title" validate:"max=200"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	ResourceType *string `json:"resourceType" validate:"omitempty,max=50"`
	FileURL      *string `json:"fileUrl" validate:"omitempty,http_url"`
	CourseCode   *string `json:"courseCode" validate:"omitempty,max=20"`
	DepartmentID *int64  `json:"departmentId" validate:"omitempty,gt=0"`
}

type MentorshipRequest struct {
	MentorID    string  `json:"mentorId" validate:"required,uuid"`
	SubjectArea *string `json:"subjectArea" validate:"omitempty,max=100"`
	Message     *string `json:"message" validate:"omitempty,max=2000"`
}

type CalendarEntryRequest struct {
	Title        string  `json:"title" validate:"max=200"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	EventType    *string `json:"eventType" validate:"omitempty,max=50"`
	StartDate    string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	DepartmentID *int64  `json:"departmentId" validate:"omitempty,gt=0"`
	IsImportant  bool    `json:"isImportant"`
}

type CampusService interface {
	CreateEvent(ctx context.Context, caller identity.Identity, req CreateEventRequest) (*models.Event, error)
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)

	ShareResource(ctx context.Context, caller identity.Identity, req ShareResourceRequest) (*models.Resource, error)
	ListResources(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	ApproveResource(ctx context.Context, caller identity.Identity, resourceID string) (bool, error)

	RequestMentorship(ctx context.Context, caller identity.Identity, req MentorshipRequest) (*models.Mentorship, error)
	ListMentorships(ctx context.Context, caller identity.Identity) ([]models.Mentorship, error)
	RespondMentorship(ctx context.Context, caller identity.Identity, mentorshipID string, status models.MentorshipStatus) (bool, error)

	AddCalendarEntry(ctx context.Context, caller identity.Identity, req CalendarEntryRequest) (*models.CalendarEntry, error)
	ListCalendar(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEntry, error)
}

type campusService struct {
	eventRepo      repository.EventRepository
	resourceRepo   repository.ResourceRepository
	mentorshipRepo repository.MentorshipRepository
	calendarRepo   repository.CalendarRepository
	v              *validation
	log            *zap.Logger
}

func NewCampusService(
	eventRepo repository.EventRepository,
	resourceRepo repository.ResourceRepository,
	mentorshipRepo repository.MentorshipRepository,
	calendarRepo repository.CalendarRepository,
	v *validation,
	log *zap.Logger,
) CampusService {
	return &campusService{
		eventRepo:      eventRepo,
		resourceRepo:   resourceRepo,
		mentorshipRepo: mentorshipRepo,
		calendarRepo:   calendarRepo,
		v:              v,
		log:            log,
	}
}

func (s *campusService) CreateEvent(ctx context.Context, caller identity.Identity, req CreateEventRequest) (*models.Event, error) {
	if err := s.v.Struct(req); err != nil {
		return nil, err
	}

	title := s.v.Text(req.Title)
	if title == "" {
		return nil, apperrors.Validation("название мероприятия обязательно")
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	event := &models.Event{
		Title:        title,
		Description:  s.v.OptionalText(req.Description),
		EventType:    s.v.OptionalText(req.EventType),
		DepartmentID: req.DepartmentID,
		OrganizerID:  caller.UserID,
		EventDate:    req.EventDate,
		Location:     s.v.OptionalText(req.Location),
		IsPublic:     isPublic,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("мероприятие создано", zap.String("event_id", event.EventID), zap.String("organizer_id", caller.UserID))
	return event, nil
}

func (s *campusService) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	return s.eventRepo.List(ctx, filter)
}

func (s *campusService) ShareResource(ctx context.Context, caller identity.Identity, req ShareResourceRequest) (*models.Resource, error) {
	if err := s.v.Struct(req); err != nil {
		return nil, err
	}

	title := s.v.Text(req.Title)
	if title == "" {
		return nil, apperrors.Validation("название ресурса обязательно")
	}

	resource := &models.Resource{
		Title:        title,
		Description:  s.v.OptionalText(req.Description),
		ResourceType: s.v.OptionalText(req.ResourceType),
		FileURL:      req.FileURL,
		CourseCode:   s.v.OptionalText(req.CourseCode),
		DepartmentID: req.DepartmentID,
		UploaderID:   caller.UserID,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	s.log.Info("ресурс отправлен на модерацию", zap.String("resource_id", resource.ResourceID), zap.String("uploader_id", caller.UserID))
	return resource, nil
}

func (s *campusService) ListResources(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	return s.resourceRepo.ListApproved(ctx, filter)
}

func (s *campusService) ApproveResource(ctx context.Context, caller identity.Identity, resourceID string) (bool, error) {
	if !caller.Role.Can(models.CapApproveResource) {
		return false, apperrors.NotAuthorized("одобрять ресурсы могут только преподаватели и сотрудники")
	}
	if err := s.v.Var("resourceId", resourceID, "required,uuid"); err != nil {
		return false, err
	}

	approved, err := s.resourceRepo.Approve(ctx, resourceID)
	if err != nil {
		return false, err
	}

	if approved {
		s.log.Info("ресурс одобрен", zap.String("resource_id", resourceID), zap.String("approved_by", caller.UserID))
	}
	return approved, nil
}

func (s *campusService) RequestMentorship(ctx context.Context, caller identity.Identity, req MentorshipRequest) (*models.Mentorship, error) {
	if err := s.v.Struct(req); err != nil {
		return nil, err
	}

	if req.MentorID == caller.UserID {
		return nil, apperrors.Validation("нельзя отправить запрос наставничества самому себе")
	}

	m := &models.Mentorship{
		MentorID:    req.MentorID,
		MenteeID:    caller.UserID,
		SubjectArea: s.v.OptionalText(req.SubjectArea),
		Message:     s.v.OptionalText(req.Message),
	}

	if err := s.mentorshipRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *campusService) ListMentorships(ctx context.Context, caller identity.Identity) ([]models.Mentorship, error) {
	return s.mentorshipRepo.ListForUser(ctx, caller.UserID)
}

// RespondMentorship reports false when the request is not a pending one addressed to the caller.
func (s *campusService) RespondMentorship(ctx context.Context, caller identity.Identity, mentorshipID string, status models.MentorshipStatus) (bool, error) {
	if status != models.MentorshipAccepted && status != models.MentorshipDeclined {
		return false, apperrors.Validation("статус должен быть accepted или declined")
	}
	if err := s.v.Var("mentorshipId", mentorshipID, "required,uuid"); err != nil {
		return false, err
	}

	return s.mentorshipRepo.UpdateStatus(ctx, mentorshipID, caller.UserID, status)
}

func (s *campusService) AddCalendarEntry(ctx context.Context, caller identity.Identity, req CalendarEntryRequest) (*models.CalendarEntry, error) {
	if !caller.Role.Can(models.CapManageCalendar) {
		return nil, apperrors.NotAuthorized("календарь могут изменять только преподаватели и сотрудники")
	}
	if err := s.v.Struct(req); err != nil {
		return nil, err
	}

	title := s.v.Text(req.Title)
	if title == "" {
		return nil, apperrors.Validation("название записи календаря обязательно")
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.Validation("некорректная дата начала: %s", req.StartDate)
	}

	var end *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, apperrors.Validation("некорректная дата окончания: %s", *req.EndDate)
		}
		if parsed.Before(start) {
			return nil, apperrors.Validation("дата окончания раньше даты начала")
		}
		end = &parsed
	}

	entry := &models.CalendarEntry{
		Title:        title,
		Description:  s.v.OptionalText(req.Description),
		EventType:    s.v.OptionalText(req.EventType),
		StartDate:    start,
		EndDate:      end,
		DepartmentID: req.DepartmentID,
		IsImportant:  req.IsImportant,
		CreatedBy:    caller.UserID,
	}

	if err := s.calendarRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.log.Info("запись календаря добавлена", zap.String("calendar_id", entry.CalendarID), zap.String("created_by", caller.UserID))
	return entry, nil
}

func (s *campusService) ListCalendar(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEntry, error) {
	return s.calendarRepo.List(ctx, filter)
}
