package rc

import "testing"

func TestScheduleStartService(t *testing.T) {
	r := newTestRC(t)
	installService(t, r, "net")
	installService(t, r, "sshd")
	installService(t, r, "ntpd")

	if err := r.ScheduleStartService("net", "sshd"); err != nil {
		t.Fatal(err)
	}
	if err := r.ScheduleStartService("net", "ntpd"); err != nil {
		t.Fatal(err)
	}

	got := r.ServicesScheduledBy("net")
	if len(got) != 2 || got[0] != "ntpd" || got[1] != "sshd" {
		t.Errorf("ServicesScheduledBy = %v, want [ntpd sshd]", got)
	}
	if !r.ServiceState("sshd", StateScheduled) {
		t.Error("scheduled marker not set on target")
	}
}

func TestScheduleClear(t *testing.T) {
	r := newTestRC(t)
	installService(t, r, "net")
	installService(t, r, "sshd")

	if err := r.ScheduleStartService("net", "sshd"); err != nil {
		t.Fatal(err)
	}
	if err := r.ScheduleClear("net"); err != nil {
		t.Fatal(err)
	}

	if got := r.ServicesScheduledBy("net"); len(got) != 0 {
		t.Errorf("ServicesScheduledBy after clear = %v", got)
	}
	if r.ServiceState("sshd", StateScheduled) {
		t.Error("scheduled marker should be gone once no trigger remains")
	}
}

func TestScheduleClearKeepsOtherTriggers(t *testing.T) {
	r := newTestRC(t)
	installService(t, r, "net")
	installService(t, r, "dbus")
	installService(t, r, "sshd")

	if err := r.ScheduleStartService("net", "sshd"); err != nil {
		t.Fatal(err)
	}
	if err := r.ScheduleStartService("dbus", "sshd"); err != nil {
		t.Fatal(err)
	}

	if err := r.ScheduleClear("net"); err != nil {
		t.Fatal(err)
	}
	if !r.ServiceState("sshd", StateScheduled) {
		t.Error("target is still scheduled by dbus; marker must stay")
	}
}

func TestUnmarkScheduledClearsAllTriggers(t *testing.T) {
	r := newTestRC(t)
	installService(t, r, "net")
	installService(t, r, "dbus")
	installService(t, r, "sshd")

	if err := r.ScheduleStartService("net", "sshd"); err != nil {
		t.Fatal(err)
	}
	if err := r.ScheduleStartService("dbus", "sshd"); err != nil {
		t.Fatal(err)
	}

	if err := r.UnmarkService("sshd", StateScheduled); err != nil {
		t.Fatal(err)
	}
	if r.ServiceState("sshd", StateScheduled) {
		t.Error("scheduled marker survived unmark")
	}
	if got := r.ServicesScheduledBy("net"); len(got) != 0 {
		t.Errorf("net still schedules %v", got)
	}
	if got := r.ServicesScheduledBy("dbus"); len(got) != 0 {
		t.Errorf("dbus still schedules %v", got)
	}
}
