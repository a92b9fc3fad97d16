package builder

import (
	"sync"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
)

// Change is delivered to subscribers after every replace.
type Change struct {
	Version uint64
	Data    types.ResumeData
}

// Builder owns one resume record. All replaces are serialized, so edits are
// applied in the order they arrive.
type Builder struct {
	mu          sync.Mutex
	data        types.ResumeData
	version     uint64
	editors     *editor.Editors
	subscribers map[int]chan Change
	nextSub     int
}

// New creates a Builder holding an empty record.
func New(editors *editor.Editors) *Builder {
	return NewFrom(types.NewResumeData(), editors)
}

// NewFrom creates a Builder holding a copy of data.
func NewFrom(data types.ResumeData, editors *editor.Editors) *Builder {
	if editors == nil {
		editors = editor.New(nil)
	}
	return &Builder{
		data:        data.Normalize(),
		editors:     editors,
		subscribers: make(map[int]chan Change),
	}
}

// Editors returns the section editors used by this builder.
func (b *Builder) Editors() *editor.Editors {
	return b.editors
}

// Snapshot returns a deep copy of the current record and its version.
func (b *Builder) Snapshot() (types.ResumeData, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data.Clone(), b.version
}

// Apply replaces the record with fn's result and notifies subscribers.
// fn must not write into its argument's slices.
func (b *Builder) Apply(fn func(types.ResumeData) types.ResumeData) types.ResumeData {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.commitLocked(fn(b.data))
}

// ApplyErr is Apply for operations that can reject their input.
// On error the record is left unchanged and nobody is notified.
func (b *Builder) ApplyErr(fn func(types.ResumeData) (types.ResumeData, error)) (types.ResumeData, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next, err := fn(b.data)
	if err != nil {
		return b.data.Clone(), err
	}
	return b.commitLocked(next), nil
}

// commitLocked installs next as the current record and notifies subscribers.
// Sends never block, so they happen under the lock and reach subscribers in version order.
func (b *Builder) commitLocked(next types.ResumeData) types.ResumeData {
	b.data = next
	b.version++
	change := Change{Version: b.version, Data: b.data.Clone()}
	for _, ch := range b.subscribers {
		// Keep only the newest change in each subscriber's buffer.
		select {
		case <-ch:
		default:
		}
		ch <- change
	}
	return b.data.Clone()
}

// Subscribe registers for changes. The returned func unsubscribes and closes the channel.
func (b *Builder) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, 1)
	b.mu.Lock()
	id := b.nextSub
	b.nextSub++
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// SetPersonalInfo replaces the personal info header.
func (b *Builder) SetPersonalInfo(v types.PersonalInfo) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData { return WithPersonalInfo(d, v) })
}

// SetSummary replaces the summary.
func (b *Builder) SetSummary(v string) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData { return WithSummary(d, v) })
}

// SetWorkExperience replaces the work experience list.
func (b *Builder) SetWorkExperience(v []types.WorkExperience) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData { return WithWorkExperience(d, v) })
}

// SetEducation replaces the education list.
func (b *Builder) SetEducation(v []types.Education) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData { return WithEducation(d, v) })
}

// SetCertifications replaces the certification list.
func (b *Builder) SetCertifications(v []types.Certification) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData { return WithCertifications(d, v) })
}

// SetSkills replaces the skills list.
func (b *Builder) SetSkills(v []string) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData { return WithSkills(d, v) })
}

// SetProjects replaces the project list.
func (b *Builder) SetProjects(v []types.Project) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData { return WithProjects(d, v) })
}

// SetAchievements replaces the achievement list.
func (b *Builder) SetAchievements(v []types.Achievement) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData { return WithAchievements(d, v) })
}

// SetResumeType replaces the resume type.
func (b *Builder) SetResumeType(v types.ResumeType) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData { return WithResumeType(d, v) })
}

// Replace swaps in a whole record, e.g. an imported or reopened draft.
func (b *Builder) Replace(v types.ResumeData) types.ResumeData {
	v = v.Normalize()
	return b.Apply(func(types.ResumeData) types.ResumeData { return v })
}
