package routers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorUsecase) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorUsecase) FindByIdentification(ctx context.Context, identification string) ([]models.Doctor, error) {
	args := m.Called(ctx, identification)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorUsecase) Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	args := m.Called(ctx, request)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorUsecase) Update(ctx context.Context, existing *models.Doctor, request *requests.UpdateDoctor) (*models.Doctor, error) {
	args := m.Called(ctx, existing, request)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorUsecase) Delete(ctx context.Context, existing *models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, existing)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientUsecase) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) FindByIdentification(ctx context.Context, identification string) (*models.Patient, error) {
	args := m.Called(ctx, identification)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) Update(ctx context.Context, existing *models.Patient, request *requests.UpdatePatient) (*models.Patient, error) {
	args := m.Called(ctx, existing, request)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) Delete(ctx context.Context, existing *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, existing)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) FindAppointmentByID(ctx context.Context, appointmentID int64) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) FindAppointmentsByPatientIdentification(ctx context.Context, identification string) ([]responses.AppointmentSummary, error) {
	args := m.Called(ctx, identification)
	summaries, _ := args.Get(0).([]responses.AppointmentSummary)
	return summaries, args.Error(1)
}

func (m *MockAppointmentUsecase) DeleteAppointmentByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

type testServer struct {
	router       *chi.Mux
	doctors      *MockDoctorUsecase
	patients     *MockPatientUsecase
	appointments *MockAppointmentUsecase
}

func newTestServer() *testServer {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:          "api",
			Version:                 "v1",
			MaxRequests:             1000,
			RequestTimeoutInSeconds: 5,
			WriteRequestsPerSecond:  1000,
			WriteBlockTimeInSeconds: 1,
		},
	}

	s := &testServer{
		router:       chi.NewRouter(),
		doctors:      new(MockDoctorUsecase),
		patients:     new(MockPatientUsecase),
		appointments: new(MockAppointmentUsecase),
	}

	SetupRoutes(
		s.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewDoctorController(logger, s.doctors, internalConfig.App.RequestTimeoutInSeconds),
		controllers.NewPatientController(logger, s.patients, internalConfig.App.RequestTimeoutInSeconds),
		controllers.NewAppointmentController(logger, s.appointments, internalConfig.App.RequestTimeoutInSeconds),
	)
	return s
}

func (s *testServer) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestAppointmentRoutes_Create(t *testing.T) {
	t.Run("Valid request", func(t *testing.T) {
		s := newTestServer()
		request := &requests.CreateAppointment{
			PatientIdentification: "123",
			DoctorID:              1,
			Specialty:             "Medicina general",
			Schedule:              "Monday 08:00",
		}
		s.appointments.On("CreateAppointment", mock.Anything, request).Return(&responses.Appointment{
			PatientIdentification: "123",
			DoctorFullName:        "John Doe",
			Specialty:             "Medicina general",
			Schedule:              "Monday 08:00",
			Office:                "101",
		}, nil)

		body, _ := json.Marshal(request)
		rr := s.do(http.MethodPost, "/api/v1/appointments", body)

		assert.Equal(t, http.StatusCreated, rr.Code)
		envelope := decode(t, rr)
		assert.True(t, envelope.Success)
		assert.JSONEq(t, `{"patient_identification":"123","doctor":"John Doe","specialty":"Medicina general","schedule":"Monday 08:00","office":"101"}`, string(envelope.Data))
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		s.appointments.AssertExpectations(t)
	})

	t.Run("Unknown specialty fails validation", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(http.MethodPost, "/api/v1/appointments", []byte(`{"patient_identification":"123","doctor_id":1,"specialty":"Astrology","schedule":"Monday 08:00"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, decode(t, rr).Success)
		s.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Malformed body", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(http.MethodPost, "/api/v1/appointments", []byte(`{"patient_identification":`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientBodyBadStructure, decode(t, rr).Message)
	})

	t.Run("Specialty mismatch is a conflict", func(t *testing.T) {
		s := newTestServer()
		s.appointments.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrConflict(constvars.EntityAppointment, "Doctor Doe does not practice Cardiología"))

		rr := s.do(http.MethodPost, "/api/v1/appointments", []byte(`{"patient_identification":"123","doctor_id":1,"specialty":"Cardiología","schedule":"Monday 08:00"}`))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "Doctor Doe does not practice Cardiología", decode(t, rr).Message)
	})

	t.Run("Usecase deadline", func(t *testing.T) {
		s := newTestServer()
		s.appointments.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrLookup(context.DeadlineExceeded, constvars.EntityPatient, constvars.ComponentPatientUsecase))

		rr := s.do(http.MethodPost, "/api/v1/appointments", []byte(`{"patient_identification":"123","doctor_id":1,"specialty":"Cardiología","schedule":"Monday 08:00"}`))

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})
}

func TestAppointmentRoutes_Lookups(t *testing.T) {
	t.Run("Non numeric id", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(http.MethodGet, "/api/v1/appointments/abc", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientIDMustBeANumber, decode(t, rr).Message)
	})

	t.Run("Patient without appointments", func(t *testing.T) {
		s := newTestServer()
		s.appointments.On("FindAppointmentsByPatientIdentification", mock.Anything, "123").
			Return(nil, exceptions.ErrNotFound(constvars.EntityAppointments))

		rr := s.do(http.MethodGet, "/api/v1/appointments/patient/123", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Appointments has not been found.", decode(t, rr).Message)
	})

	t.Run("Patient listing", func(t *testing.T) {
		s := newTestServer()
		s.appointments.On("FindAppointmentsByPatientIdentification", mock.Anything, "123").
			Return([]responses.AppointmentSummary{{DoctorFullName: "John Doe", Specialty: "Medicina general", Schedule: "Monday 08:00", Office: "101"}}, nil)

		rr := s.do(http.MethodGet, "/api/v1/appointments/patient/123", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "patient_identification")
	})

	t.Run("Delete missing appointment", func(t *testing.T) {
		s := newTestServer()
		s.appointments.On("DeleteAppointmentByID", mock.Anything, int64(7)).
			Return(nil, exceptions.ErrNotFound(constvars.EntityAppointment))

		rr := s.do(http.MethodDelete, "/api/v1/appointments/7", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDoctorRoutes(t *testing.T) {
	doctor := &models.Doctor{ID: 1, Identification: "900", GivenName: "John", FamilyName: "Doe", Specialty: "Medicina general", Office: "101"}

	t.Run("Update resolves then merges", func(t *testing.T) {
		s := newTestServer()
		office := "404"
		updated := *doctor
		updated.Office = office
		s.doctors.On("FindByID", mock.Anything, int64(1)).Return(doctor, nil)
		s.doctors.On("Update", mock.Anything, doctor, &requests.UpdateDoctor{Office: &office}).Return(&updated, nil)

		rr := s.do(http.MethodPatch, "/api/v1/doctors/1", []byte(`{"office":"404"}`))

		assert.Equal(t, http.StatusOK, rr.Code)
		s.doctors.AssertExpectations(t)
	})

	t.Run("Invalid office", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(http.MethodPatch, "/api/v1/doctors/1", []byte(`{"office":"12"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		s.doctors.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Delete with appointments", func(t *testing.T) {
		s := newTestServer()
		s.doctors.On("FindByID", mock.Anything, int64(1)).Return(doctor, nil)
		s.doctors.On("Delete", mock.Anything, doctor).
			Return(nil, exceptions.ErrConflict(constvars.EntityDoctor, constvars.ErrClientDoctorHasAppointments))

		rr := s.do(http.MethodDelete, "/api/v1/doctors/1", nil)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, constvars.ErrClientDoctorHasAppointments, decode(t, rr).Message)
	})

	t.Run("Duplicate registration", func(t *testing.T) {
		s := newTestServer()
		s.doctors.On("Create", mock.Anything, mock.Anything).Return(nil, exceptions.ErrAlreadyExists(constvars.EntityDoctor))

		rr := s.do(http.MethodPost, "/api/v1/doctors", []byte(`{"identification":"900","given_name":"John","family_name":"Doe","specialty":"Medicina general","office":"101"}`))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "Record has not been created. Doctor already exists", decode(t, rr).Message)
	})

	t.Run("Store failure keeps its message", func(t *testing.T) {
		s := newTestServer()
		s.doctors.On("FindAll", mock.Anything).
			Return(nil, exceptions.ErrLookup(errors.New("connection refused"), constvars.EntityDoctor, constvars.ComponentDoctorUsecase))

		rr := s.do(http.MethodGet, "/api/v1/doctors", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Error getting doctor", decode(t, rr).Message)
	})
}

func TestPatientRoutes(t *testing.T) {
	t.Run("Lookup by identification", func(t *testing.T) {
		s := newTestServer()
		s.patients.On("FindByIdentification", mock.Anything, "123").
			Return(&models.Patient{ID: 1, Identification: "123", GivenName: "Ana", FamilyName: "Ruiz"}, nil)

		rr := s.do(http.MethodGet, "/api/v1/patients/identification/123", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, string(decode(t, rr).Data), `"given_name":"Ana"`)
	})

	t.Run("Unclassified error hides details", func(t *testing.T) {
		s := newTestServer()
		s.patients.On("FindByID", mock.Anything, int64(3)).Return(nil, errors.New("driver: bad connection"))

		rr := s.do(http.MethodGet, "/api/v1/patients/3", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, decode(t, rr).Message)
		assert.NotContains(t, rr.Body.String(), "bad connection")
	})
}
