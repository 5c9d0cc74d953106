// Package snapshot stores rendered banner output under a name so it can be
// compared or exported later.
//
// Records are YAML documents kept in a gdata store. A nil store selects a
// memory-only mode: everything works for the lifetime of the process but
// nothing survives a restart.
package snapshot

import (
	"fmt"
	"log"
	"regexp"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Snapshot 一次渲染结果的存档
type Snapshot struct {
	Name      string            `yaml:"name"`
	Markup    string            `yaml:"markup"`
	Style     string            `yaml:"style"`
	Seed      int64             `yaml:"seed,omitempty"`       // 0 表示非确定性渲染
	Attrs     map[string]string `yaml:"attributes,omitempty"` // 渲染时的属性快照
	CreatedAt time.Time         `yaml:"createdAt"`
}

// 存储路径常量
const (
	snapshotObject = "snapshots"
	indexProperty  = "index"
	recordPrefix   = "snap_"

	maxNameLength = 40
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// snapshotIndex 已保存快照的名称列表
type snapshotIndex struct {
	Names []string `yaml:"names"`
}

// SnapshotManager 快照管理器
// 负责快照的保存、加载和名称索引
type SnapshotManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	memory       map[string]Snapshot
	names        []string
}

// NewSnapshotManager 创建快照管理器
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式，仅内存快照）
//
// 返回：
//   - *SnapshotManager: 管理器实例
//   - error: 索引加载失败时返回错误（管理器仍可用，索引为空）
func NewSnapshotManager(gdataManager *gdata.Manager) (*SnapshotManager, error) {
	sm := &SnapshotManager{
		gdataManager: gdataManager,
		memory:       make(map[string]Snapshot),
	}

	if err := sm.loadIndex(); err != nil {
		log.Printf("[SnapshotManager] Warning: Failed to load snapshot index: %v (starting empty)", err)
		return sm, err
	}
	return sm, nil
}

// ValidateName 检查快照名称
//
// 只允许字母、数字、下划线和连字符，长度不超过 40
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("snapshot name is empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("snapshot name %q longer than %d characters", name, maxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("snapshot name %q may only contain letters, digits, '_' and '-'", name)
	}
	return nil
}

// IsPersistent 返回快照是否会写入磁盘
func (sm *SnapshotManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// Names 返回已保存快照的名称（按字母排序）
func (sm *SnapshotManager) Names() []string {
	out := make([]string, len(sm.names))
	copy(out, sm.names)
	return out
}

// Save 保存快照，同名快照会被覆盖
//
// 参数：
//   - name: 快照名称
//   - snap: 快照内容（Name 字段会被 name 覆盖，CreatedAt 为零时填充当前时间）
//
// 返回：
//   - error: 名称非法、序列化或写入失败时返回错误
func (sm *SnapshotManager) Save(name string, snap Snapshot) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	snap.Name = name
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now()
	}

	if sm.gdataManager == nil {
		sm.memory[name] = snap
		sm.addName(name)
		return nil
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", name, err)
	}
	if err := sm.gdataManager.SaveObjectProp(snapshotObject, recordPrefix+name, data); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}

	sm.addName(name)
	if err := sm.saveIndex(); err != nil {
		return err
	}

	log.Printf("[SnapshotManager] Snapshot %s saved", name)
	return nil
}

// Load 加载快照
//
// 返回：
//   - Snapshot: 快照内容
//   - error: 快照不存在或反序列化失败时返回错误
func (sm *SnapshotManager) Load(name string) (Snapshot, error) {
	if err := ValidateName(name); err != nil {
		return Snapshot{}, err
	}

	if sm.gdataManager == nil {
		snap, ok := sm.memory[name]
		if !ok {
			return Snapshot{}, fmt.Errorf("snapshot %s not found", name)
		}
		return snap, nil
	}

	if !sm.gdataManager.ObjectPropExists(snapshotObject, recordPrefix+name) {
		return Snapshot{}, fmt.Errorf("snapshot %s not found", name)
	}
	data, err := sm.gdataManager.LoadObjectProp(snapshotObject, recordPrefix+name)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to unmarshal snapshot %s: %w", name, err)
	}
	return snap, nil
}

func (sm *SnapshotManager) addName(name string) {
	i := sort.SearchStrings(sm.names, name)
	if i < len(sm.names) && sm.names[i] == name {
		return
	}
	sm.names = append(sm.names, "")
	copy(sm.names[i+1:], sm.names[i:])
	sm.names[i] = name
}

func (sm *SnapshotManager) loadIndex() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(snapshotObject, indexProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(snapshotObject, indexProperty)
	if err != nil {
		return fmt.Errorf("failed to load snapshot index: %w", err)
	}
	var idx snapshotIndex
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot index: %w", err)
	}

	sm.names = nil
	for _, name := range idx.Names {
		// 跳过手动编辑导致的非法条目
		if ValidateName(name) == nil {
			sm.addName(name)
		}
	}
	return nil
}

func (sm *SnapshotManager) saveIndex() error {
	data, err := yaml.Marshal(&snapshotIndex{Names: sm.names})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot index: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(snapshotObject, indexProperty, data); err != nil {
		return fmt.Errorf("failed to save snapshot index: %w", err)
	}
	return nil
}
