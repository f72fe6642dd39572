package member

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/changhyeonkim/member-registry/internal/model"
	"github.com/changhyeonkim/member-registry/internal/shared/logger"
)

// seedMembers are created in an empty repository, in this order, with ids 1..3.
var seedMembers = []struct {
	name, address, phoneNumber string
}{
	{"Budi", "Jakarta", "08231383934"},
	{"Santi", "Medan", "081325648565"},
	{"Dodi", "Surabaya", "08565548565"},
}

// MemberRegistry owns member validation and mutation.
//
// Ids are dense and assigned as last id + 1, and records are only ever
// soft-deleted, so id N is valid exactly when 1 <= N <= Size() and record N
// is still active. Every operation holds mu for its whole duration.
type MemberRegistry struct {
	mu               sync.Mutex
	memberRepository MemberRepository
}

// NewMemberRegistry creates a registry over repo, seeding it when seed is set and repo is empty.
func NewMemberRegistry(ctx context.Context, memberRepository MemberRepository, seed bool) (*MemberRegistry, error) {
	r := &MemberRegistry{memberRepository: memberRepository}
	if !seed {
		return r, nil
	}

	if err := r.seed(ctx); err != nil {
		return nil, fmt.Errorf("seed members: %w", err)
	}
	return r, nil
}

func (r *MemberRegistry) seed(ctx context.Context) error {
	n, err := r.memberRepository.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.FromContext(ctx).Info("Seed skipped, repository not empty", "size", n)
		return nil
	}

	for i, s := range seedMembers {
		if err := r.memberRepository.Create(ctx, model.NewMember(i+1, s.name, s.address, s.phoneNumber)); err != nil {
			return err
		}
	}
	logger.FromContext(ctx).Info("Seed members created", "count", len(seedMembers))
	return nil
}

// ListActive returns all members that are not deleted, in insertion order.
func (r *MemberRegistry) ListActive(ctx context.Context) ([]model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.memberRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	active := make([]model.Member, 0, len(all))
	for _, m := range all {
		if m.IsActive() {
			active = append(active, m)
		}
	}
	return active, nil
}

// FindByID returns the active member with the given id.
func (r *MemberRegistry) FindByID(ctx context.Context, id int) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	member, err := r.activeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, notFound("Member ID not found")
	}
	return &Result{Message: "Member ID found", Member: member}, nil
}

// Add validates the input and appends a new member with the next id.
func (r *MemberRegistry) Add(ctx context.Context, in MemberInput) (*Result, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := in.Validate(); err != nil {
		log.Debug("Member rejected", "reason", err.Error())
		return nil, err
	}

	n, err := r.memberRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}

	member := model.NewMember(n+1, *in.Name, *in.Address, *in.PhoneNumber)
	if err := r.memberRepository.Create(ctx, member); err != nil {
		log.Error("Failed to create member", "error", err)
		return nil, fmt.Errorf("create member: %w", err)
	}

	log.Info("Member created", "id", member.ID, "phoneNumber", logger.MaskPhone(member.PhoneNumber))
	return &Result{Message: "Member added successfully.", Member: member}, nil
}

// UpdateByID overwrites name, address and phone number of an active member.
// Nothing changes unless all three fields are valid.
func (r *MemberRegistry) UpdateByID(ctx context.Context, id int, in MemberInput) (*Result, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	member, err := r.activeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, notFound(fmt.Sprintf("Update failed. The ID `%d` does not exist.", id))
	}

	if err := in.Validate(); err != nil {
		log.Debug("Member update rejected", "id", id, "reason", err.Error())
		return nil, err
	}

	member.Overwrite(*in.Name, *in.Address, *in.PhoneNumber)
	if err := r.memberRepository.Update(ctx, member); err != nil {
		log.Error("Failed to update member", "id", id, "error", err)
		return nil, fmt.Errorf("update member %d: %w", id, err)
	}

	log.Info("Member updated", "id", id)
	return &Result{
		Message: fmt.Sprintf("Member with ID `%d` updated successfully.", id),
		Member:  member,
	}, nil
}

// DeleteByID soft-deletes an active member. The record keeps its slot and id.
func (r *MemberRegistry) DeleteByID(ctx context.Context, id int) (*Result, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	member, err := r.activeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, notFound(fmt.Sprintf("Delete failed. The ID `%d` does not exist.", id))
	}

	member.Delete()
	if err := r.memberRepository.Update(ctx, member); err != nil {
		log.Error("Failed to delete member", "id", id, "error", err)
		return nil, fmt.Errorf("delete member %d: %w", id, err)
	}

	log.Info("Member deleted", "id", id)
	return &Result{Message: fmt.Sprintf("Member with ID `%d` deleted successfully.", id)}, nil
}

// Size counts every record ever added, deleted ones included.
func (r *MemberRegistry) Size(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, err := r.memberRepository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}

// activeByID returns (nil, nil) when id is out of range or the record is deleted.
// Callers must hold mu.
func (r *MemberRegistry) activeByID(ctx context.Context, id int) (*model.Member, error) {
	n, err := r.memberRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}
	if id < 1 || id > n {
		return nil, nil
	}

	member, err := r.memberRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find member %d: %w", id, err)
	}
	if !member.IsActive() {
		return nil, nil
	}
	return member, nil
}
