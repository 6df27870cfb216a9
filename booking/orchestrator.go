package booking

import (
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/message"
	"log/slog"
	"nightlife-booking/common"
	"nightlife-booking/common/constant"
	"nightlife-booking/common/errs"
	"nightlife-booking/common/otel"
	"nightlife-booking/model"
	"nightlife-booking/outbound/platform"
	"sync"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateConfirming
	StateSubmitting
	StateAwaitingPayment
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateConfirming:
		return "confirming"
	case StateSubmitting:
		return "submitting"
	case StateAwaitingPayment:
		return "awaiting_payment"
	case StateDone:
		return "done"
	}
	return "unknown"
}

type Kind int

const (
	KindTable Kind = iota
	KindPerformer
)

// Orchestrator drives one booking submission end to end: validate the draft,
// hold it for an explicit confirmation, create the booking, then request the
// payment link. Booking creation always precedes the payment call; if the
// payment link fails, a compensating cancel is issued so the backend is not
// left holding an unpaid orphan.
type Orchestrator struct {
	Platform     platform.Client
	Validate     *validator.Validate
	VndFormatter *message.Printer

	mu    sync.Mutex
	state State
	kind  Kind
	token string
	draft *model.BookingDraft
}

func NewOrchestrator(client platform.Client, validate *validator.Validate, formatter *message.Printer) *Orchestrator {
	return &Orchestrator{
		Platform:     client,
		Validate:     validate,
		VndFormatter: formatter,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Begin runs the validation gate and, if every field passes, holds the draft
// in the confirming state and returns the confirmation summary. Nothing is
// sent to the backend here; the user still has to confirm explicitly.
func (o *Orchestrator) Begin(token string, kind Kind, draft model.BookingDraft) (*Summary, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateIdle && o.state != StateDone {
		return nil, fmt.Errorf("booking flow already in state %s", o.state)
	}

	o.state = StateValidating

	if err := o.validateDraft(kind, draft); err != nil {
		o.state = StateIdle
		return nil, err
	}

	if kind == KindPerformer {
		totals := TotalsForSlots(len(draft.SlotIDs))
		draft.TotalPrice = totals.Total
		draft.Deposit = totals.Deposit
	} else {
		var deposit int64
		for _, id := range draft.TableIDs {
			deposit += draft.TableDeposits[id]
		}
		draft.Deposit = deposit
		draft.TotalPrice = deposit
	}

	o.state = StateConfirming
	o.kind = kind
	o.token = token
	o.draft = &draft

	var summary Summary
	if kind == KindPerformer {
		summary = BuildSlotSummary(o.VndFormatter, draft.Date, len(draft.SlotIDs))
	} else {
		summary = BuildTableSummary(o.VndFormatter, draft.Date, len(draft.TableIDs), draft.Deposit)
	}

	return &summary, nil
}

// Confirm is the second, deliberate tap. It creates the booking and then the
// payment link, each failure surfacing its own step error.
func (o *Orchestrator) Confirm(ctx context.Context) (*model.CreateBookingResponse, error) {
	o.mu.Lock()
	if o.state != StateConfirming {
		o.mu.Unlock()
		return nil, fmt.Errorf("nothing to confirm in state %s", o.state)
	}

	o.state = StateSubmitting
	kind := o.kind
	token := o.token
	draft := *o.draft
	o.mu.Unlock()

	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.Confirm")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	created, err := o.createBooking(ctx, kind, token, draft)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		o.setState(StateIdle)
		return nil, &errs.StepError{Step: constant.StepCreateBooking, Message: constant.MsgCreateBookingFailed, Err: err}
	}

	o.setState(StateAwaitingPayment)

	link, err := o.Platform.CreatePaymentLink(ctx, token, created.ID, draft.Deposit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create payment link", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)

		if cancelErr := o.Platform.CancelBooking(ctx, token, created.ID); cancelErr != nil {
			slog.ErrorContext(ctx, "failed to cancel booking after payment failure", traceIdAttr, slog.Any(constant.LogFieldErr, cancelErr))
		}

		o.setState(StateIdle)
		return nil, &errs.StepError{Step: constant.StepCreatePayment, Message: constant.MsgCreatePaymentFailed, Err: err}
	}

	o.mu.Lock()
	o.state = StateDone
	o.draft = nil
	o.token = ""
	o.mu.Unlock()

	slog.InfoContext(ctx, "booking submitted", traceIdAttr, slog.Any(constant.LogFieldResponse, created.ID))

	return &model.CreateBookingResponse{
		BookingId:  created.ID,
		TotalPrice: draft.TotalPrice,
		Deposit:    draft.Deposit,
		PaymentUrl: link.Url,
	}, nil
}

// Abandon discards local state. Closing the flow after submission has
// started has no effect; the compensation path owns cleanup from there.
func (o *Orchestrator) Abandon() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == StateSubmitting || o.state == StateAwaitingPayment {
		return
	}

	o.state = StateIdle
	o.draft = nil
	o.token = ""
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) createBooking(ctx context.Context, kind Kind, token string, draft model.BookingDraft) (*platform.BookingCreated, error) {
	if kind == KindPerformer {
		return o.Platform.CreatePerformerBooking(ctx, token, platform.CreatePerformerBookingRequest{
			ReceiverID:   draft.ReceiverID,
			Date:         draft.Date,
			SlotIds:      draft.SlotIDs,
			OfferedPrice: draft.TotalPrice,
			Location:     draft.Address.String(),
			Phone:        draft.Phone,
			Note:         draft.Note,
		})
	}

	tables := make([]platform.BookedTable, 0, len(draft.TableIDs))
	for _, id := range draft.TableIDs {
		tables = append(tables, platform.BookedTable{TableID: id, DepositPrice: draft.TableDeposits[id]})
	}

	return o.Platform.CreateTableBooking(ctx, token, platform.CreateTableBookingRequest{
		ReceiverID:     draft.ReceiverID,
		Tables:         tables,
		Date:           draft.Date,
		DisplayName:    draft.DisplayName,
		Phone:          draft.Phone,
		Note:           draft.Note,
		PaymentStatus:  string(model.PaymentStatusUnpaid),
		ScheduleStatus: string(model.ScheduleStatusPending),
	})
}

func (o *Orchestrator) validateDraft(kind Kind, draft model.BookingDraft) error {
	if kind == KindPerformer {
		return o.Validate.Struct(model.CreatePerformerBookingRequest{
			PerformerID:   draft.ReceiverID,
			Date:          draft.Date,
			SlotIds:       draft.SlotIDs,
			OfferedPrice:  draft.TotalPrice,
			Phone:         draft.Phone,
			Note:          draft.Note,
			AddressDetail: draft.Address.Detail,
			ProvinceID:    draft.Address.ProvinceID,
			ProvinceName:  draft.Address.ProvinceName,
			DistrictID:    draft.Address.DistrictID,
			DistrictName:  draft.Address.DistrictName,
			WardID:        draft.Address.WardID,
			WardName:      draft.Address.WardName,
		})
	}

	return o.Validate.Struct(model.CreateTableBookingRequest{
		BarID:       draft.ReceiverID,
		Date:        draft.Date,
		TableIds:    draft.TableIDs,
		DisplayName: draft.DisplayName,
		Phone:       draft.Phone,
		Note:        draft.Note,
	})
}
