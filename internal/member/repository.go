package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/member-registry/internal/model"
)

var errRecordNotFound = errors.New("member: record not found")

// MemberRepository stores members in insertion order.
// Records are never removed or reordered, so member id N is always the N-th record.
type MemberRepository interface {
	Count(ctx context.Context) (int, error)
	FindAll(ctx context.Context) ([]model.Member, error)
	FindByID(ctx context.Context, id int) (*model.Member, error)
	Create(ctx context.Context, member *model.Member) error
	Update(ctx context.Context, member *model.Member) error
}

// MemoryRepository keeps members in a slice; slot id-1 holds member id.
// It is not safe for concurrent use on its own; MemberRegistry serializes access.
type MemoryRepository struct {
	members []model.Member
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Count(ctx context.Context) (int, error) {
	return len(m.members), nil
}

func (m *MemoryRepository) FindAll(ctx context.Context) ([]model.Member, error) {
	members := make([]model.Member, len(m.members))
	copy(members, m.members)
	return members, nil
}

func (m *MemoryRepository) FindByID(ctx context.Context, id int) (*model.Member, error) {
	if id < 1 || id > len(m.members) {
		return nil, errRecordNotFound
	}
	member := m.members[id-1]
	return &member, nil
}

func (m *MemoryRepository) Create(ctx context.Context, member *model.Member) error {
	if member.ID != len(m.members)+1 {
		return fmt.Errorf("member id %d out of sequence, next is %d", member.ID, len(m.members)+1)
	}
	m.members = append(m.members, *member)
	return nil
}

func (m *MemoryRepository) Update(ctx context.Context, member *model.Member) error {
	if member.ID < 1 || member.ID > len(m.members) {
		return errRecordNotFound
	}
	m.members[member.ID-1] = *member
	return nil
}

var (
	_ MemberRepository = (*MemoryRepository)(nil)
	_ MemberRepository = (*GormRepository)(nil)
)
