package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testGeometryComponent struct {
	Width, Height float64
}

type testFocusComponent struct {
	Focused bool
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	geo := &testGeometryComponent{Width: 100, Height: 50}
	em.AddComponent(id, geo)

	comp, found := em.GetComponent(id, reflect.TypeOf(&testGeometryComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testGeometryComponent)
	if retrieved.Width != 100 || retrieved.Height != 50 {
		t.Errorf("Component data mismatch, expected (100, 50), got (%f, %f)", retrieved.Width, retrieved.Height)
	}
}

func TestGenericComponentAPI(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testFocusComponent{Focused: true})

	// 泛型与反射两种写法看到的是同一个组件
	if !em.HasComponent(id, reflect.TypeOf(&testFocusComponent{})) {
		t.Fatal("reflection API should see component added through generic API")
	}

	focus, ok := GetComponent[*testFocusComponent](em, id)
	if !ok || !focus.Focused {
		t.Fatalf("GetComponent returned (%v, %v)", focus, ok)
	}

	// 通过指针修改后再次获取应可见
	focus.Focused = false
	again, _ := GetComponent[*testFocusComponent](em, id)
	if again.Focused {
		t.Error("component should be shared by pointer")
	}

	RemoveComponent[*testFocusComponent](em, id)
	if HasComponent[*testFocusComponent](em, id) {
		t.Error("component should be removed")
	}

	if _, ok := GetComponent[*testGeometryComponent](em, id); ok {
		t.Error("missing component should not be found")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testGeometryComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if HasComponent[*testGeometryComponent](em, id) {
		t.Error("components should be removed with the entity")
	}

	// 已删除实体添加组件应被忽略
	em.AddComponent(id, &testGeometryComponent{})
	if em.Exists(id) {
		t.Error("AddComponent must not resurrect a removed entity")
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testGeometryComponent{})
		if i%2 == 0 {
			AddComponent(em, id, &testFocusComponent{})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testGeometryComponent](em)
	if len(all) != 20 {
		t.Fatalf("Expected 20 entities, got %d", len(all))
	}
	for i, id := range all {
		if id != ids[i] {
			t.Fatalf("entities not in creation order: index %d got %d want %d", i, id, ids[i])
		}
	}

	both := GetEntitiesWith2[*testGeometryComponent, *testFocusComponent](em)
	if len(both) != 10 {
		t.Fatalf("Expected 10 entities with both components, got %d", len(both))
	}
	for i := 1; i < len(both); i++ {
		if both[i-1] >= both[i] {
			t.Fatalf("entities not sorted: %v", both)
		}
	}
}
