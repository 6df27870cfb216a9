package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"log"
	"log/slog"
	"nightlife-booking/booking"
	"nightlife-booking/common/constant"
	"nightlife-booking/common/errs"
	"nightlife-booking/model"
	"nightlife-booking/outbound/platform"
	"os"
	"strconv"
	"strings"
)

// The wizards mirror the mobile booking modals: pick a date, toggle free
// tables or slots, fill the form, review the summary, confirm. All state
// lives in this one invocation and dies with it.

func runBookTableCmd(ctx context.Context) {
	cfg := newCfg("env")

	token := cfg.GetString("client.token")
	if token == "" {
		log.Fatalln("client.token is not set")
	}

	platformClient := newPlatformClient(cfg)
	validate := booking.NewValidator()
	vndFormatter := message.NewPrinter(language.Vietnamese)
	scanner := bufio.NewScanner(os.Stdin)

	barId := prompt(scanner, "Bar account id: ")
	date := prompt(scanner, "Date (YYYY-MM-DD): ")

	catalog, err := platformClient.ListBarTables(ctx, token, barId)
	if err != nil {
		log.Fatalln("unable to load the table catalog:", err)
	}

	bookings, err := platformClient.ListReceiverBookings(ctx, token, barId, date)
	if err != nil {
		slog.Error("failed to fetch existing bookings, treating all tables as free", slog.Any(constant.LogFieldErr, err))
	}

	depositByTable := make(map[int64]int64, len(catalog))

	fmt.Println("Tables:")
	for _, table := range catalog {
		depositByTable[table.ID] = table.DepositPrice

		marker := " "
		if booking.IsTableBooked(table.ID, date, bookings) {
			marker = "x"
		}
		fmt.Printf("  [%s] %3d  %-20s %2d seats  %-10s deposit %s\n",
			marker, table.ID, table.Name, table.Capacity, table.TypeName, vndFormatter.Sprintf("%dđ", table.DepositPrice))
	}

	selection := booking.NewSelection()
	for {
		input := prompt(scanner, "Toggle table id (enter to finish): ")
		if input == "" {
			break
		}

		id, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			fmt.Println("unknown table")
			continue
		}
		if _, exists := depositByTable[id]; !exists {
			fmt.Println("unknown table")
			continue
		}
		if booking.IsTableBooked(id, date, bookings) {
			fmt.Println("table already booked on that date")
			continue
		}

		selection.Toggle(id)
		fmt.Printf("selected %d table(s), deposit %s\n",
			selection.Count(), vndFormatter.Sprintf("%dđ", selection.TotalDeposit(depositByTable)))
	}

	displayName := prompt(scanner, "Booking name: ")
	phone := prompt(scanner, "Contact phone: ")
	note := prompt(scanner, "Note (optional): ")

	draft := model.BookingDraft{
		DraftID:       ulid.Make().String(),
		ReceiverID:    barId,
		Date:          date,
		TableIDs:      selection.IDs(),
		TableDeposits: depositByTable,
		DisplayName:   displayName,
		Phone:         phone,
		Note:          note,
	}

	confirmAndSubmit(ctx, platformClient, validate, vndFormatter, scanner, token, booking.KindTable, draft)
}

func runBookPerformerCmd(ctx context.Context) {
	cfg := newCfg("env")

	token := cfg.GetString("client.token")
	if token == "" {
		log.Fatalln("client.token is not set")
	}

	platformClient := newPlatformClient(cfg)
	locationClient := newLocationClient(cfg)
	validate := booking.NewValidator()
	vndFormatter := message.NewPrinter(language.Vietnamese)
	scanner := bufio.NewScanner(os.Stdin)

	performerId := prompt(scanner, "Performer account id: ")
	date := prompt(scanner, "Date (YYYY-MM-DD): ")

	bookings, err := platformClient.ListReceiverBookings(ctx, token, performerId, date)
	if err != nil {
		slog.Error("failed to fetch existing bookings, treating all slots as free", slog.Any(constant.LogFieldErr, err))
	}

	fmt.Println("Slots:")
	for _, slot := range constant.SlotsData {
		marker := " "
		if booking.IsSlotBooked(slot.ID, date, bookings) {
			marker = "x"
		}
		fmt.Printf("  [%s] %2d  %s\n", marker, slot.ID, slot.Label)
	}

	selection := booking.NewSelection()
	for {
		input := prompt(scanner, "Toggle slot id (enter to finish): ")
		if input == "" {
			break
		}

		id, err := strconv.Atoi(input)
		if err != nil || constant.SlotLabelById(id) == "" {
			fmt.Println("unknown slot")
			continue
		}
		if booking.IsSlotBooked(id, date, bookings) {
			fmt.Println("slot already booked on that date")
			continue
		}

		selection.Toggle(int64(id))
		totals := booking.TotalsForSlots(selection.Count())
		fmt.Printf("selected %d slot(s), total %s, deposit %s\n",
			selection.Count(), vndFormatter.Sprintf("%dđ", totals.Total), vndFormatter.Sprintf("%dđ", totals.Deposit))
	}

	cascade := booking.NewCascade(locationClient)
	if err := cascade.LoadProvinces(ctx); err != nil {
		slog.Error("failed to load provinces", slog.Any(constant.LogFieldErr, err))
	}

	if province, ok := pickOption(scanner, "Province", provinceOptions(cascade.Provinces())); ok {
		cascade.SelectProvince(ctx, province)
	}
	if district, ok := pickOption(scanner, "District", districtOptions(cascade.Districts())); ok {
		cascade.SelectDistrict(ctx, district)
	}
	if ward, ok := pickOption(scanner, "Ward", wardOptions(cascade.Wards())); ok {
		cascade.SelectWard(ward)
	}
	cascade.SetDetail(prompt(scanner, "Street address: "))

	phone := prompt(scanner, "Contact phone: ")
	note := prompt(scanner, "Note (optional): ")

	slotIds := make([]int, 0, selection.Count())
	for _, id := range selection.IDs() {
		slotIds = append(slotIds, int(id))
	}

	draft := model.BookingDraft{
		DraftID:    ulid.Make().String(),
		ReceiverID: performerId,
		Date:       date,
		SlotIDs:    slotIds,
		Phone:      phone,
		Note:       note,
		Address:    cascade.Address(),
	}

	confirmAndSubmit(ctx, platformClient, validate, vndFormatter, scanner, token, booking.KindPerformer, draft)
}

func confirmAndSubmit(
	ctx context.Context,
	client platform.Client,
	validate *validator.Validate,
	vndFormatter *message.Printer,
	scanner *bufio.Scanner,
	token string,
	kind booking.Kind,
	draft model.BookingDraft,
) {
	orchestrator := booking.NewOrchestrator(client, validate, vndFormatter)

	summary, err := orchestrator.Begin(token, kind, draft)
	if err != nil {
		fields := booking.FieldErrors(err)
		if fields == nil {
			fmt.Println("unable to start the booking:", err)
			return
		}

		fmt.Println("Please fix the following fields:")
		for field, tag := range fields {
			fmt.Printf("  %s: %s\n", field, tag)
		}
		return
	}

	fmt.Printf("\nBooking for %s\n", summary.Date)
	if summary.SlotCount > 0 {
		fmt.Printf("  Slots:     %d\n  Total:     %s\n  Deposit:   %s\n  Remaining: %s\n",
			summary.SlotCount, summary.Total, summary.Deposit, summary.Remaining)
	} else {
		fmt.Printf("  Tables:  %d\n  Deposit: %s\n", summary.Tables, summary.Deposit)
	}

	if !strings.EqualFold(prompt(scanner, "Confirm and pay the deposit? (y/N): "), "y") {
		orchestrator.Abandon()
		fmt.Println("Booking abandoned, nothing was sent.")
		return
	}

	resp, err := orchestrator.Confirm(ctx)
	if err != nil {
		var stepErr *errs.StepError
		if errors.As(err, &stepErr) {
			fmt.Println(stepErr.Message)
		} else {
			fmt.Println("booking failed:", err)
		}
		return
	}

	fmt.Printf("Booking %s created. Pay the deposit here:\n%s\n", resp.BookingId, resp.PaymentUrl)
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

type option struct {
	id   string
	name string
}

func provinceOptions(provinces []model.Province) []option {
	out := make([]option, 0, len(provinces))
	for _, p := range provinces {
		out = append(out, option{id: p.ID, name: p.Name})
	}
	return out
}

func districtOptions(districts []model.District) []option {
	out := make([]option, 0, len(districts))
	for _, d := range districts {
		out = append(out, option{id: d.ID, name: d.Name})
	}
	return out
}

func wardOptions(wards []model.Ward) []option {
	out := make([]option, 0, len(wards))
	for _, w := range wards {
		out = append(out, option{id: w.ID, name: w.Name})
	}
	return out
}

func pickOption(scanner *bufio.Scanner, label string, options []option) (string, bool) {
	if len(options) == 0 {
		fmt.Printf("%s list is empty, skipping\n", label)
		return "", false
	}

	for i, opt := range options {
		fmt.Printf("%4d. %s\n", i+1, opt.name)
	}

	for {
		input := prompt(scanner, label+" number: ")
		if input == "" {
			return "", false
		}

		idx, err := strconv.Atoi(input)
		if err != nil || idx < 1 || idx > len(options) {
			fmt.Println("invalid choice")
			continue
		}

		return options[idx-1].id, true
	}
}
